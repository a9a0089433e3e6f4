package domain

import "time"

// Session is the persisted record of one onboarding flow: the answers, the
// navigation position, and whether the flow already submitted successfully.
type Session struct {
	ID        string    `json:"id"`
	Answers   *Answers  `json:"answers"`
	Position  int       `json:"position"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Envelope carries an opaque encrypted blob when the at-rest encryption
	// middleware is active; the rest of the record is zeroed in that case.
	Envelope string `json:"envelope,omitempty"`
}

// NewSession creates a fresh session at the first step with empty answers.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Answers:   NewAnswers(),
		Position:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone deep-copies the session, including the answer record.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Answers = s.Answers.Clone()
	return &next
}
