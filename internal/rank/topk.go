// Package rank selects the K best-scoring candidates from a stream
// without sorting the whole pool.
package rank

import (
	"container/heap"
	"sort"
	"strings"

	"flingr/internal/domain"
	"flingr/internal/score"
)

// heapBoundFloor keeps memory deterministic on huge candidate streams
// (whole-filesystem search) while leaving headroom above K so ties can
// settle deterministically at the end.
const heapBoundFloor = 200

// Selector maintains the best candidates seen so far in a bounded
// min-heap, O(log bound) per insertion.
type Selector struct {
	limit int
	bound int
	items minHeap
}

// NewSelector creates a selector returning at most k items.
func NewSelector(k int) *Selector {
	bound := k
	if bound < heapBoundFloor {
		bound = heapBoundFloor
	}
	return &Selector{
		limit: k,
		bound: bound,
		items: make(minHeap, 0, bound),
	}
}

// Add offers one scored candidate. Sentinel non-matches are ignored.
func (s *Selector) Add(sc int, c domain.Candidate) {
	if sc == score.NoMatch {
		return
	}
	item := domain.ScoredCandidate{Score: sc, Candidate: c}

	if len(s.items) < s.bound {
		heap.Push(&s.items, item)
		return
	}
	// Heap is full: replace the worst item only if the new one beats it.
	if item.Less(s.items[0]) {
		s.items[0] = item
		heap.Fix(&s.items, 0)
	}
}

// Len reports how many candidates are currently held.
func (s *Selector) Len() int {
	return len(s.items)
}

// Results drains the heap and returns the top K in final order:
// descending score, ties broken by case-insensitive label.
func (s *Selector) Results() []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, len(s.items))
	copy(out, s.items)
	s.items = s.items[:0]

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	if len(out) > s.limit {
		out = out[:s.limit]
	}
	return out
}

// minHeap keeps the worst candidate at the root so it can be evicted
// first when the bound is hit.
type minHeap []domain.ScoredCandidate

func (h minHeap) Len() int { return len(h) }

func (h minHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return strings.ToLower(h[i].Candidate.Label) > strings.ToLower(h[j].Candidate.Label)
}

func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(domain.ScoredCandidate))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
