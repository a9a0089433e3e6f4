package middleware_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/persistence/middleware"
)

func key(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestEncryptionMiddlewareRoundTrip(t *testing.T) {
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(1),
	})(inner)
	ctx := context.Background()

	sess := sessionWithContact(t, "enc-1")
	sess.Position = 4
	require.NoError(t, store.Save(ctx, "enc-1", sess))

	loaded, err := store.Load(ctx, "enc-1")
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Position)
	assert.Equal(t, "Asha Rao", loaded.Answers.Name)
}

func TestEncryptionMiddlewareHidesAnswersAtRest(t *testing.T) {
	inner := memory.NewStore()
	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(1),
	})(inner)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "enc-2", sessionWithContact(t, "enc-2")))

	raw, err := inner.Load(ctx, "enc-2")
	require.NoError(t, err)
	assert.NotEmpty(t, raw.Envelope)
	assert.Empty(t, raw.Answers.Name)
	assert.Empty(t, raw.Answers.Motivation)
}

func TestEncryptionMiddlewareKeyRotation(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(1),
	})(inner)
	require.NoError(t, oldStore.Save(ctx, "rot-1", sessionWithContact(t, "rot-1")))

	// A rotated store decrypts old data through the fallback key.
	newStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    key(2),
		FallbackKeys: [][]byte{key(1)},
	})(inner)
	loaded, err := newStore.Load(ctx, "rot-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", loaded.Answers.Name)
}

func TestEncryptionMiddlewareWrongKeyFails(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	oldStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(1),
	})(inner)
	require.NoError(t, oldStore.Save(ctx, "bad-1", domain.NewSession("bad-1")))

	wrongStore := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(9),
	})(inner)
	_, err := wrongStore.Load(ctx, "bad-1")
	assert.Error(t, err)
}

func TestEncryptionMiddlewareRejectsPlainSessions(t *testing.T) {
	inner := memory.NewStore()
	ctx := context.Background()

	// Written without encryption, read through the encrypting store.
	require.NoError(t, inner.Save(ctx, "plain-1", domain.NewSession("plain-1")))

	store := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key(1),
	})(inner)
	_, err := store.Load(ctx, "plain-1")
	assert.Error(t, err)
}

func TestEncryptionMiddlewareRejectsShortKey(t *testing.T) {
	assert.Panics(t, func() {
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey: []byte("short"),
		})
	})
}
