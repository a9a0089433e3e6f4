package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunStateStoreContract(t, memory.NewStore())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			sess := domain.NewSession(id)
			_ = store.Save(ctx, id, sess)
			_, _ = store.Load(ctx, id)
		}(i)
	}
	wg.Wait()

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 16)
}

func TestProfileRecorder(t *testing.T) {
	rec := memory.NewProfileRecorder()
	ctx := context.Background()

	require.NoError(t, rec.UpdateProfile(ctx, domain.SubmissionPayload{Name: "A"}))
	assert.Len(t, rec.Calls(), 1)

	rec.FailWith = &domain.SubmissionError{Message: "down"}
	err := rec.UpdateProfile(ctx, domain.SubmissionPayload{Name: "B"})
	assert.Error(t, err)
	// Failed attempts are recorded too.
	assert.Len(t, rec.Calls(), 2)
	assert.Equal(t, "B", rec.Calls()[1].Name)
}
