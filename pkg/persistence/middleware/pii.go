// Package middleware provides StateStore decorators: PII masking and
// at-rest encryption for persisted sessions, which carry contact details.
package middleware

import (
	"context"

	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
)

const piiMask = "***"

type piiMiddleware struct {
	next ports.StateStore
}

// NewPIIMiddleware creates a middleware that masks the contact fields (name,
// phone, date of birth) before a session reaches the backing store. Use it
// for stores that feed debugging or analytics tooling; a store that must
// round-trip submissions needs the encryption middleware instead.
func NewPIIMiddleware() Middleware {
	return func(next ports.StateStore) ports.StateStore {
		return &piiMiddleware{next: next}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, sessionID string, sess *domain.Session) error {
	// Clone to avoid side effects on the in-memory session used by the flow.
	cloned := sess.Clone()
	if cloned.Answers != nil {
		if cloned.Answers.Name != "" {
			cloned.Answers.Name = piiMask
		}
		if cloned.Answers.Phone != "" {
			cloned.Answers.Phone = piiMask
		}
		if cloned.Answers.DateOfBirth != "" {
			cloned.Answers.DateOfBirth = piiMask
		}
	}
	return m.next.Save(ctx, sessionID, cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *piiMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
