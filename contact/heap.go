package contact

// state is a single entry in the search heap: the internal index of a
// contact, the ETA at which it was pushed, and the internal index of
// its predecessor contact (-1 at a seed). Multiple stale entries for the
// same contact may coexist in the heap; see etaHeap's doc comment.
type state struct {
	contactIdx int
	eta        float64
	prev       int
}

// etaHeap is a binary min-heap of state, ordered by ascending eta, used
// by search, search's filtered form, and every K-routes variant built on
// top of it.
//
// Rather than a decrease-key operation, relaxation pushes a fresh state
// whenever it improves a label; stale entries (whose eta no longer
// matches the current label, because a better one was found later) are
// discarded lazily when popped. This is simpler than maintaining
// heap-position bookkeeping for decrease-key, at the cost of at most
// O(log N) wasted heap space per improvement — bounded because each
// relaxation pushes at most once.
//
// Ties in eta are broken arbitrarily; temporal Dijkstra's correctness
// does not depend on tie order (any one of several equal-ETA terminal
// contacts is an equally valid optimum).
type etaHeap []state

func (h etaHeap) Len() int { return len(h) }

func (h etaHeap) Less(i, j int) bool { return h[i].eta < h[j].eta }

func (h etaHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface. x must be a state.
func (h *etaHeap) Push(x interface{}) {
	*h = append(*h, x.(state))
}

// Pop implements heap.Interface; returns the last element after the
// heap package has swapped it to the end.
func (h *etaHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
