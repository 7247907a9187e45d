package generation

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/n46/deckgen/internal/entity"
)

func startingSnapshot() entity.GenerationProgress {
	return entity.GenerationProgress{
		State:   entity.GenerationStateStarting,
		Message: "Preparing your presentation...",
	}
}

func TestProgressStore_ClaimRejectsActiveJob(t *testing.T) {
	store := NewProgressStore(time.Minute)

	assert.True(t, store.Claim("p-1", startingSnapshot()))
	assert.True(t, store.Active("p-1"))

	assert.False(t, store.Claim("p-1", startingSnapshot()))
}

func TestProgressStore_ClaimReplacesTerminalSnapshot(t *testing.T) {
	store := NewProgressStore(time.Minute)

	store.Set("p-1", entity.GenerationProgress{
		State:    entity.GenerationStateFailed,
		Message:  "Generation failed",
		Error:    "boom",
		Progress: 0,
	})

	assert.True(t, store.Claim("p-1", startingSnapshot()))

	progress, ok := store.Get("p-1")
	assert.True(t, ok)
	assert.Equal(t, entity.GenerationStateStarting, progress.State)
	assert.Empty(t, progress.Error)
}

func TestProgressStore_ClaimIsExclusive(t *testing.T) {
	store := NewProgressStore(time.Minute)

	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Claim("p-1", startingSnapshot()) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.True(t, store.Active("p-1"))
}
