package revalidation

import (
	"sync"
	"time"

	"manager-os-backend/internal/logger"
)

// Revalidator marks rendered page paths stale after a mutation so a
// front-end cache can re-render them. Implementations must be safe for
// concurrent use.
type Revalidator interface {
	Invalidate(paths ...string)
}

// MemoryRevalidator records the most recent staleness stamp per path.
// The stamp table is what a polling front-end (or a test) inspects to
// decide whether a cached page is out of date.
type MemoryRevalidator struct {
	mu     sync.RWMutex
	stamps map[string]time.Time
}

// NewMemoryRevalidator creates a new in-memory revalidator
func NewMemoryRevalidator() *MemoryRevalidator {
	return &MemoryRevalidator{
		stamps: make(map[string]time.Time),
	}
}

// Invalidate marks each path stale as of now
func (r *MemoryRevalidator) Invalidate(paths ...string) {
	now := time.Now()
	r.mu.Lock()
	for _, path := range paths {
		r.stamps[path] = now
	}
	r.mu.Unlock()
	logger.New().WithField("paths", paths).Debug("marked paths stale")
}

// StaleSince returns the last staleness stamp for a path
func (r *MemoryRevalidator) StaleSince(path string) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stamp, ok := r.stamps[path]
	return stamp, ok
}
