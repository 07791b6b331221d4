package contact

// KRoutesByConsumption models scheduling k bundles back-to-back: it
// repeatedly runs BestRoute on a private clone of cs, and after each hit
// subtracts q.BundleBytes (clamped at 0) from the ResidualBytes of every
// contact on that route, so later routes see reduced capacity and may
// diverge or degrade. idx may be reused across iterations unchanged:
// residual-byte mutation never changes which contacts exist, their From
// node, or their id, which is all an index depends on.
//
// The caller's cs is never mutated. Stops early, with fewer than k
// routes, the moment a BestRoute call fails to find one; that is a
// normal outcome, not an error.
func KRoutesByConsumption(cs []Contact, idx *NeighborIndex, q Query, k int) Routes {
	if k < 1 {
		return Routes{}
	}

	clone := make([]Contact, len(cs))
	copy(clone, cs)

	var out []Route
	for len(out) < k {
		r := BestRoute(clone, idx, q)
		if !r.Found {
			break
		}
		out = append(out, r)
		consume(clone, idx, r, q.BundleBytes)
	}

	return Routes{Routes: out}
}

// consume subtracts bundleBytes from the ResidualBytes of every contact
// on r, clamping at 0.
func consume(clone []Contact, idx *NeighborIndex, r Route, bundleBytes float64) {
	for _, id := range r.ContactIDs {
		ci, ok := idx.idToIdx[id]
		if !ok {
			continue
		}
		clone[ci].ResidualBytes -= bundleBytes
		if clone[ci].ResidualBytes < 0 {
			clone[ci].ResidualBytes = 0
		}
	}
}
