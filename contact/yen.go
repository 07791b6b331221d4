package contact

// yenAttemptMultiplier bounds the total number of filtered searches
// KRoutesByYen will perform while hunting for k routes: k * this value.
// Keeps a pathological graph (many deviation points, few surviving
// completions) from searching indefinitely.
const yenAttemptMultiplier = 20

// KRoutesByYen produces up to k distinct routes ordered by ascending
// ETA, without mutating any contact's capacity, for genuine alternative
// inspection. The first result, if any, equals BestRoute's result.
//
// At each round, every already-accepted route contributes one candidate
// per deviation point: force the path up to (not including) position i,
// ban the contact at position i, and run BestRouteFiltered. The smallest
// -ETA candidate not already present (by full ordered id sequence,
// checked against every previously accepted route — not merely the
// last one, since distinct deviation origins can converge on the same
// alternative) is accepted; ties among candidates are broken by
// whichever is produced first.
//
// Halts early, with fewer than k routes, when no further distinct
// candidate exists or the attempt budget (k * 20) is exhausted — both
// normal outcomes.
func KRoutesByYen(cs []Contact, idx *NeighborIndex, q Query, k int) Routes {
	if k < 1 {
		return Routes{}
	}

	base := BestRoute(cs, idx, q)
	if !base.Found {
		return Routes{}
	}

	results := []Route{base}
	attempts := 0
	budget := k * yenAttemptMultiplier

	for len(results) < k && attempts < budget {
		var best *Route
		for _, r := range results {
			for i := 0; i < r.Hops && attempts < budget; i++ {
				attempts++

				f := Filters{
					Banned:       map[int]struct{}{r.ContactIDs[i]: {}},
					ForcedPrefix: append([]int(nil), r.ContactIDs[:i]...),
				}
				cand := BestRouteFiltered(cs, idx, q, f)
				if !cand.Found || containsRoute(results, cand) {
					continue
				}
				if best == nil || cand.ETA+EpsilonTime < best.ETA {
					c := cand
					best = &c
				}
			}
		}

		if best == nil {
			break
		}
		results = append(results, *best)
	}

	return Routes{Routes: results}
}

// containsRoute reports whether routes already contains r, compared by
// hop count followed by element-wise contact-id equality.
func containsRoute(routes []Route, r Route) bool {
	for _, existing := range routes {
		if sameRoute(existing, r) {
			return true
		}
	}
	return false
}

func sameRoute(a, b Route) bool {
	if a.Hops != b.Hops {
		return false
	}
	for i := range a.ContactIDs {
		if a.ContactIDs[i] != b.ContactIDs[i] {
			return false
		}
	}
	return true
}
