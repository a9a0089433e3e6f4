package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/session"
)

func TestLoadOrStartCreatesSession(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	sess, err := m.LoadOrStart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", sess.ID)
	assert.Equal(t, 0, sess.Position)

	// The ID is reserved immediately.
	loaded, err := m.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", loaded.ID)
}

func TestLoadOrStartReturnsExisting(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	sess, err := m.LoadOrStart(ctx, "user-2")
	require.NoError(t, err)
	require.NoError(t, sess.Answers.Set(domain.FieldMotivation, "clear_goal"))
	sess.Position = 1
	require.NoError(t, m.Save(ctx, "user-2", sess))

	again, err := m.LoadOrStart(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Position)
	assert.Equal(t, "clear_goal", again.Answers.Get(domain.FieldMotivation))
}

func TestLoadMissingSession(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	_, err := m.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := m.LoadOrStart(ctx, "user-3")
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, "user-3"))

	_, err = m.Load(ctx, "user-3")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestWithLockSerializesAccess(t *testing.T) {
	m := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := m.LoadOrStart(ctx, "user-4")
	require.NoError(t, err)

	// Concurrent read-modify-write cycles under WithLock must not lose
	// updates.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "user-4", func(ctx context.Context) error {
				sess, err := m.Store().Load(ctx, "user-4")
				if err != nil {
					return err
				}
				sess.Position++
				return m.Store().Save(ctx, "user-4", sess)
			})
		}()
	}
	wg.Wait()

	sess, err := m.Load(ctx, "user-4")
	require.NoError(t, err)
	assert.Equal(t, 20, sess.Position)
}
