package ports

import (
	"context"

	"github.com/lumora-app/intake/pkg/domain"
)

// ProfileService is the external persistence service consumed at the end of
// the flow. It exposes exactly one operation; the engine calls it once per
// user-initiated submit and never retries on its own.
type ProfileService interface {
	UpdateProfile(ctx context.Context, payload domain.SubmissionPayload) error
}
