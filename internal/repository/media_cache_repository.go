package repository

import (
	"context"
	"sync"
)

// MediaCacheRepository memoizes media references by the structural
// generation inputs. Entries are never evicted; the store-census job logs
// its size so growth stays visible.
type MediaCacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, ref string)
	Len(ctx context.Context) int
}

type mediaCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMediaCacheRepository() MediaCacheRepository {
	return &mediaCacheRepository{entries: make(map[string]string)}
}

func (r *mediaCacheRepository) Get(ctx context.Context, key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.entries[key]
	return ref, ok
}

func (r *mediaCacheRepository) Set(ctx context.Context, key string, ref string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[key] = ref
}

func (r *mediaCacheRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
