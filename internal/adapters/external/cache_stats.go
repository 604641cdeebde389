package external

import (
	"sync/atomic"
	"time"

	"weatherdash.app/internal/ports"
)

// hitCounter tracks cache hits and misses for the CacheMetrics port
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (h *hitCounter) RecordHit() {
	h.hits.Add(1)
}

func (h *hitCounter) RecordMiss() {
	h.misses.Add(1)
}

// RecordOperation is a no-op; operation timings are exported by the
// prometheus collector instead.
func (h *hitCounter) RecordOperation(string, time.Duration) {}

func (h *hitCounter) GetStats() ports.CacheStats {
	hits, misses := h.hits.Load(), h.misses.Load()
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
