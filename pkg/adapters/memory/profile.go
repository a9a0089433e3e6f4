package memory

import (
	"context"
	"sync"

	"github.com/lumora-app/intake/pkg/domain"
)

// ProfileRecorder implements ports.ProfileService by recording every payload
// it receives. Tests use it to assert that submission happens exactly once;
// the CLI uses it for dry runs.
type ProfileRecorder struct {
	mu    sync.Mutex
	calls []domain.SubmissionPayload

	// FailWith, when set, is returned by every UpdateProfile call.
	FailWith error
}

// NewProfileRecorder creates an empty recorder.
func NewProfileRecorder() *ProfileRecorder {
	return &ProfileRecorder{}
}

// UpdateProfile records the payload and returns FailWith.
func (r *ProfileRecorder) UpdateProfile(ctx context.Context, payload domain.SubmissionPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, payload)
	return r.FailWith
}

// Calls returns a copy of the recorded payloads.
func (r *ProfileRecorder) Calls() []domain.SubmissionPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SubmissionPayload, len(r.calls))
	copy(out, r.calls)
	return out
}
