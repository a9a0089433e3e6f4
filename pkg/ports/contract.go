package ports

import (
	"context"
	"testing"
	"time"

	"github.com/lumora-app/intake/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a StateStore
// implementation adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sess := domain.NewSession(sessionID)
		require.NoError(t, sess.Answers.Set(domain.FieldMotivation, "clear_goal"))
		require.NoError(t, sess.Answers.Set(domain.FieldLifeStage, domain.StageCollege))
		sess.Position = 3

		err := store.Save(ctx, sessionID, sess)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sessionID, loaded.ID)
		assert.Equal(t, 3, loaded.Position)
		assert.Equal(t, "clear_goal", loaded.Answers.Get(domain.FieldMotivation))
		assert.Equal(t, domain.StageCollege, loaded.Answers.Get(domain.FieldLifeStage))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		sess := domain.NewSession(sessionID)
		require.NoError(t, store.Save(ctx, sessionID, sess))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		require.NoError(t, loaded.Answers.Set(domain.FieldName, "Mutated"))

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, again.Answers.Get(domain.FieldName), "mutating a loaded session must not leak into the store")
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.NewSession(sessionID))
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.NewSession(id1))
		_ = store.Save(ctx, id2, domain.NewSession(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
