package ports

import (
	"context"

	"github.com/lumora-app/intake/pkg/domain"
)

// StateStore defines the interface for persisting flow sessions.
// This allows a flow to be stopped and resumed across process restarts.
type StateStore interface {
	// Save persists the session under its ID.
	Save(ctx context.Context, sessionID string, sess *domain.Session) error

	// Load retrieves the session for a given ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session for a given ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
