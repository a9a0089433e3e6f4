package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/adapters/redis"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	store := redis.NewFromClient(client)
	ports.RunStateStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	// Create store with 1s TTL
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	sessionID := "session-ttl"

	sess := domain.NewSession(sessionID)
	require.NoError(t, sess.Answers.Set(domain.FieldMotivation, "clear_goal"))

	// 1. Save
	require.NoError(t, store.Save(ctx, sessionID, sess))

	// 2. Verify List (immediately)
	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, sessionID)

	// 3. Fast forward time in miniredis (for key expiration)
	mr.FastForward(2 * time.Second)

	// 4. Verify Load (should fail)
	_, err = store.Load(ctx, sessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// 5. Verify List (lazily cleaned up). The prune score comes from
	// time.Now(), so we must actually wait out the TTL.
	time.Sleep(1200 * time.Millisecond)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisStore_CustomPrefix(t *testing.T) {
	mr, client := newTestClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.NewSession("abc")))
	assert.True(t, mr.Exists("custom:abc"))
}

func TestLocker_MutualExclusion(t *testing.T) {
	_, client := newTestClient(t)
	locker := redis.NewLocker(client, "intake:")
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)

	// A second holder cannot acquire while the lock is held.
	shortCtx, cancel := context.WithTimeout(ctx, 150*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(shortCtx, "sess-1", time.Minute)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A different key is unaffected.
	unlockOther, err := locker.Lock(ctx, "sess-2", time.Minute)
	require.NoError(t, err)
	require.NoError(t, unlockOther(ctx))

	// After release, the lock is acquirable again.
	require.NoError(t, unlock(ctx))
	unlock2, err := locker.Lock(ctx, "sess-1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))
}
