package chord

import (
	"sync"

	"github.com/montanaflynn/stats"
)

// hopStats keeps a bounded ring buffer of recent lookup hop counts so the
// ambient debug-dump task can report on the O(log N) routing claim without
// a full metrics pipeline.
type hopStats struct {
	mtx     sync.Mutex
	samples []float64
	cap     int
	next    int
	filled  bool
}

func newHopStats(capacity int) *hopStats {
	return &hopStats{samples: make([]float64, capacity), cap: capacity}
}

func (h *hopStats) record(hops int) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.samples[h.next] = float64(hops)
	h.next = (h.next + 1) % h.cap
	if h.next == 0 {
		h.filled = true
	}
}

func (h *hopStats) count() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	if h.filled {
		return h.cap
	}
	return h.next
}

func (h *hopStats) snapshot() []float64 {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	n := h.next
	if h.filled {
		n = h.cap
	}
	out := make([]float64, n)
	copy(out, h.samples[:n])
	return out
}

func (h *hopStats) mean() (float64, bool) {
	data := h.snapshot()
	if len(data) == 0 {
		return 0, false
	}
	m, err := stats.Mean(stats.Float64Data(data))
	if err != nil {
		return 0, false
	}
	return m, true
}
