package contact

import "container/heap"

// maxPrefixWalk bounds the predecessor walk used to recompute how much
// of a forced prefix has been matched so far and the final path
// reconstruction. It defends against an accidental cycle in a corrupted
// label graph; a correct run never approaches it.
const maxPrefixWalk = 10000

// BestRoute finds the earliest-arrival route from q.Src to q.Dst over
// cs, using idx as its neighbor index. It is a thin, unfiltered call
// into the same temporal Dijkstra that backs every other search entry
// point in this package.
//
// Returns a Route with Found == false, never an error, if cs or idx is
// empty/nil, q's nodes are out of range, q.BundleBytes is non-positive,
// q.Src == q.Dst, or no feasible route exists.
func BestRoute(cs []Contact, idx *NeighborIndex, q Query) Route {
	return search(cs, idx, q, nil)
}

// BestRouteFiltered is BestRoute constrained to routes consistent with
// f: contacts in f.Banned are invisible, and the route must begin with
// exactly the ordered sequence f.ForcedPrefix.
func BestRouteFiltered(cs []Contact, idx *NeighborIndex, q Query, f Filters) Route {
	return search(cs, idx, q, &f)
}

// search implements temporal Dijkstra over the contact graph, optionally
// constrained by f. It never returns an error; malformed input and
// unreachable destinations both yield Route{Found: false}.
func search(cs []Contact, idx *NeighborIndex, q Query, f *Filters) Route {
	if idx == nil || idx.NodeCap() == 0 || len(cs) == 0 {
		return Route{}
	}
	if q.Src < 0 || q.Src >= idx.nodeCap || q.Dst < 0 || q.Dst >= idx.nodeCap {
		return Route{}
	}
	if q.BundleBytes <= 0 {
		return Route{}
	}
	if q.Src == q.Dst {
		// self-loop/zero-hop queries never produce a route.
		return Route{}
	}

	absExpiry := q.absoluteExpiry()
	forcedPrefix := f.prefix()

	labels := make([]label, len(cs))
	for i := range labels {
		labels[i] = label{eta: inf, prev: -1}
	}

	h := &etaHeap{}
	heap.Init(h)

	seed(cs, idx, q, f, absExpiry, forcedPrefix, labels, h)

	for h.Len() > 0 {
		st := heap.Pop(h).(state)
		ci := st.contactIdx

		if st.eta > labels[ci].eta+EpsilonTime {
			continue // stale heap entry; a better label has since been found.
		}

		done := matchedPrefixLen(labels, cs, ci, forcedPrefix)

		if cs[ci].To == q.Dst && done >= len(forcedPrefix) {
			return reconstruct(labels, cs, ci, st.eta)
		}

		expand(cs, idx, q, f, absExpiry, forcedPrefix, done, ci, labels, h)
	}

	return Route{}
}

// seed pushes the initial frontier: every contact leaving q.Src (or, if
// a forced prefix is set, only its first element) that is both unbanned
// and feasible from q.T0.
func seed(cs []Contact, idx *NeighborIndex, q Query, f *Filters, absExpiry float64, forcedPrefix []int, labels []label, h *etaHeap) {
	if len(forcedPrefix) > 0 {
		ci, ok := idx.idToIdx[forcedPrefix[0]]
		if !ok || cs[ci].From != q.Src || f.isBanned(cs[ci].ID) {
			return
		}
		relaxSeed(cs, ci, q, absExpiry, labels, h)
		return
	}

	for _, ci := range idx.neighbors(q.Src) {
		if f.isBanned(cs[ci].ID) {
			continue
		}
		relaxSeed(cs, ci, q, absExpiry, labels, h)
	}
}

func relaxSeed(cs []Contact, ci int, q Query, absExpiry float64, labels []label, h *etaHeap) {
	eta, feasible := evalETA(&cs[ci], q.T0, q.BundleBytes, absExpiry)
	if !feasible {
		return
	}
	labels[ci] = label{eta: eta, prev: -1}
	heap.Push(h, state{contactIdx: ci, eta: eta, prev: -1})
}

// expand relaxes every edge out of the contact arriving at ci, honoring
// the forced-prefix restriction: while done < len(forcedPrefix), the
// only admissible neighbor is the one whose id equals the next forced
// id.
func expand(cs []Contact, idx *NeighborIndex, q Query, f *Filters, absExpiry float64, forcedPrefix []int, done, ci int, labels []label, h *etaHeap) {
	tIn := labels[ci].eta
	for _, nj := range idx.neighbors(cs[ci].To) {
		if f.isBanned(cs[nj].ID) {
			continue
		}
		if done < len(forcedPrefix) && cs[nj].ID != forcedPrefix[done] {
			continue
		}
		if !viable(&cs[nj], tIn, q.BundleBytes, absExpiry) {
			continue
		}
		eta2, feasible := evalETA(&cs[nj], tIn, q.BundleBytes, absExpiry)
		if !feasible {
			continue
		}
		if eta2+EpsilonTime < labels[nj].eta {
			labels[nj] = label{eta: eta2, prev: ci}
			heap.Push(h, state{contactIdx: nj, eta: eta2, prev: ci})
		}
	}
}

// matchedPrefixLen recomputes, by walking predecessors from ci back to
// the root, how many leading elements of forcedPrefix the path to ci
// already matches. Recomputing on each pop (rather than carrying the
// count on the label) keeps the label type narrow; the walk is bounded
// by path length and only runs when a forced prefix is in play.
func matchedPrefixLen(labels []label, cs []Contact, ci int, forcedPrefix []int) int {
	if len(forcedPrefix) == 0 {
		return 0
	}

	var ids []int
	cur := ci
	for steps := 0; cur != -1 && steps < maxPrefixWalk; steps++ {
		ids = append(ids, cs[cur].ID)
		cur = labels[cur].prev
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	done := 0
	for done < len(ids) && done < len(forcedPrefix) && ids[done] == forcedPrefix[done] {
		done++
	}
	return done
}

// reconstruct walks the predecessor chain from terminal back to its
// root, producing the ordered Contact.ID sequence of a found route.
func reconstruct(labels []label, cs []Contact, terminal int, eta float64) Route {
	var idxs []int
	cur := terminal
	for steps := 0; cur != -1 && steps < maxPrefixWalk; steps++ {
		idxs = append(idxs, cur)
		cur = labels[cur].prev
	}
	for i, j := 0, len(idxs)-1; i < j; i, j = i+1, j-1 {
		idxs[i], idxs[j] = idxs[j], idxs[i]
	}

	ids := make([]int, len(idxs))
	for i, ii := range idxs {
		ids[i] = cs[ii].ID
	}

	return Route{ContactIDs: ids, Hops: len(ids), ETA: eta, Found: true}
}
