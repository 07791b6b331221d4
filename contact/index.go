package contact

// NeighborIndex groups contact indices by their From node, enabling
// O(out-degree) expansion of a contact's head node during search.
//
// It borrows a read-only view of the contact set it was built from: the
// set's identity (ids and From values) must remain stable for the
// lifetime of the index. Capacity mutation (ResidualBytes) is permitted
// and does not invalidate the index — KRoutesByConsumption relies on
// this, reusing the caller's index unchanged across every iteration of
// its private clone.
//
// byFrom is a flat array indexed by node id in [0, nodeCap), not a hash
// map, because node ids are small, dense, non-negative integers in
// practice. idToIdx maps a contact's stable ID back to its position in
// the contact slice the index was built from, so that Filters (which
// name contacts by ID) can be applied in O(1).
type NeighborIndex struct {
	nodeCap int
	byFrom  [][]int
	idToIdx map[int]int
}

// NodeCap reports 1 + the maximum node id (From or To) seen across the
// indexed contact set, or 0 if the set was empty.
func (idx *NeighborIndex) NodeCap() int {
	if idx == nil {
		return 0
	}
	return idx.nodeCap
}

// BuildIndex constructs a NeighborIndex over cs in O(len(cs)) time.
// Contacts whose From node falls outside the resulting [0, nodeCap)
// range are silently skipped from byFrom (they can never be seeded or
// expanded into from a valid node) but remain addressable by ID via
// idToIdx for Filters lookups.
//
// An empty cs yields a NeighborIndex with nodeCap == 0; every search
// entry point treats that as "no route" without further work.
func BuildIndex(cs []Contact) *NeighborIndex {
	nodeCap := 0
	for i := range cs {
		if cs[i].From+1 > nodeCap {
			nodeCap = cs[i].From + 1
		}
		if cs[i].To+1 > nodeCap {
			nodeCap = cs[i].To + 1
		}
	}

	idx := &NeighborIndex{
		nodeCap: nodeCap,
		byFrom:  make([][]int, nodeCap),
		idToIdx: make(map[int]int, len(cs)),
	}

	for i := range cs {
		idx.idToIdx[cs[i].ID] = i
		if cs[i].From >= 0 && cs[i].From < nodeCap {
			idx.byFrom[cs[i].From] = append(idx.byFrom[cs[i].From], i)
		}
	}

	return idx
}

// neighbors returns the internal indices of contacts leaving node n, or
// nil if n is out of range.
func (idx *NeighborIndex) neighbors(n int) []int {
	if n < 0 || n >= idx.nodeCap {
		return nil
	}
	return idx.byFrom[n]
}
