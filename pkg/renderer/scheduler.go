package renderer

import "sync"

// Scheduler hands out contiguous pixel-index batches to workers. The
// counter is the only shared mutable state in the whole render: every
// index in [0, total) is claimed by exactly one batch, no matter how
// many workers call ClaimBatch concurrently.
type Scheduler struct {
	mu      sync.Mutex
	next    int
	total   int
	batch   int
	claimed int
}

// NewScheduler creates a scheduler over the flattened pixel index
// space [0, totalPixels) with the given batch size.
func NewScheduler(totalPixels, batchSize int) *Scheduler {
	return &Scheduler{total: totalPixels, batch: batchSize}
}

// ClaimBatch claims the next batch. It returns ok=false once the
// whole index space has been handed out. The last batch may extend
// past the end of the index space; callers clip at the total.
func (s *Scheduler) ClaimBatch() (start, count int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= s.total {
		return 0, 0, false
	}
	start = s.next
	s.next += s.batch
	s.claimed++
	return start, s.batch, true
}

// BatchesClaimed returns how many batches have been handed out so far
func (s *Scheduler) BatchesClaimed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claimed
}
