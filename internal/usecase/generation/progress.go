package generation

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/n46/deckgen/internal/entity"
)

// ProgressStore keeps live generation snapshots keyed by presentation ID.
// Snapshots outlive the job by the configured TTL so clients that poll late
// still see the terminal state.
type ProgressStore struct {
	// mu serializes Claim. The cache is safe for concurrent use on its own,
	// but claiming a run is a read-check-write sequence.
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewProgressStore(ttl time.Duration) *ProgressStore {
	return &ProgressStore{
		cache: gocache.New(ttl, ttl),
	}
}

func (s *ProgressStore) Set(presentationID string, progress entity.GenerationProgress) {
	s.cache.Set(presentationID, progress, gocache.DefaultExpiration)
}

func (s *ProgressStore) Get(presentationID string) (entity.GenerationProgress, bool) {
	v, ok := s.cache.Get(presentationID)
	if !ok {
		return entity.GenerationProgress{}, false
	}
	return v.(entity.GenerationProgress), true
}

func (s *ProgressStore) Delete(presentationID string) {
	s.cache.Delete(presentationID)
}

// Active reports whether a job is currently running for this presentation.
func (s *ProgressStore) Active(presentationID string) bool {
	progress, ok := s.Get(presentationID)
	if !ok {
		return false
	}

	return isActive(progress.State)
}

// Claim atomically records the starting snapshot unless a job is already
// running for this presentation. Terminal and missing snapshots are
// overwritten; exactly one of any concurrent claimants wins.
func (s *ProgressStore) Claim(presentationID string, progress entity.GenerationProgress) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.Get(presentationID); ok && isActive(current.State) {
		return false
	}

	s.Set(presentationID, progress)
	return true
}

func isActive(state entity.GenerationState) bool {
	return state == entity.GenerationStateStarting || state == entity.GenerationStateGenerating
}
