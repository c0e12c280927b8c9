package abcd

import "math/rand/v2"

// recombine pairs the endpoints of two colliding edges into two candidate
// edges, choosing one of the two matchings with probability 1/2.
func recombine(p1, p2 Edge, rng *rand.Rand) (Edge, Edge) {
	if rng.Float64() < 0.5 {
		return newEdge(p1.A, p2.A), newEdge(p1.B, p2.B)
	}
	return newEdge(p1.A, p2.B), newEdge(p1.B, p2.A)
}

// popFront removes and returns the head of the recycle queue.
func popFront(q []Edge) (Edge, []Edge) {
	return q[0], q[1:]
}

// rewireLocal resolves a recycle queue against a single edge set. The outer
// loop follows the bounded-progress rule: the counter is reset only while
// the queue keeps strictly shrinking, so the loop always terminates; whatever
// is left in the queue is returned as unresolved.
func rewireLocal(edges *edgeSet, recycle []Edge, nstubs int, rng *rand.Rand) []Edge {
	last := len(recycle)
	counter := last
	attempts := nstubs / 2
	if attempts < 1 {
		attempts = 1
	}
	for len(recycle) > 0 {
		counter--
		if counter < 0 {
			if len(recycle) < last {
				last = len(recycle)
				counter = last
			} else {
				break
			}
		}
		var p1 Edge
		p1, recycle = popFront(recycle)

		placed := false
		for try := 0; try < attempts; try++ {
			fromRecycle := len(recycle) > 0 &&
				(edges.len() == 0 || rng.Float64() < 2*float64(len(recycle))/float64(nstubs))
			if !fromRecycle && edges.len() == 0 {
				break
			}
			var p2 Edge
			j := -1
			if fromRecycle {
				j = rng.IntN(len(recycle))
				p2 = recycle[j]
			} else {
				p2 = edges.random(rng)
			}
			np1, np2 := recombine(p1, p2, rng)
			if np1 == np2 || np1.selfLoop() || np2.selfLoop() || edges.has(np1) || edges.has(np2) {
				continue
			}
			if fromRecycle {
				recycle[j] = recycle[len(recycle)-1]
				recycle = recycle[:len(recycle)-1]
			} else {
				edges.remove(p2)
			}
			edges.insert(np1)
			edges.insert(np2)
			placed = true
			break
		}
		if !placed {
			recycle = append(recycle, p1)
		}
	}
	return recycle
}

// rewireGlobal resolves the background recycle queue. Partners come from the
// background set or the queue, but a candidate is accepted only if it is
// absent from the background AND from every community set, so the
// reconciliation pass is not undone by the rewiring that follows it.
func rewireGlobal(background *edgeSet, clusterSets []*edgeSet, recycle []Edge, nstubs int, rng *rand.Rand) []Edge {
	inAny := func(e Edge) bool {
		if background.has(e) {
			return true
		}
		for _, s := range clusterSets {
			if s.has(e) {
				return true
			}
		}
		return false
	}

	last := len(recycle)
	counter := last
	attempts := nstubs / 2
	if attempts < 1 {
		attempts = 1
	}
	for len(recycle) > 0 {
		counter--
		if counter < 0 {
			if len(recycle) < last {
				last = len(recycle)
				counter = last
			} else {
				break
			}
		}
		var p1 Edge
		p1, recycle = popFront(recycle)

		placed := false
		for try := 0; try < attempts; try++ {
			fromRecycle := len(recycle) > 0 &&
				(background.len() == 0 || rng.Float64() < 2*float64(len(recycle))/float64(nstubs))
			if !fromRecycle && background.len() == 0 {
				break
			}
			var p2 Edge
			j := -1
			if fromRecycle {
				j = rng.IntN(len(recycle))
				p2 = recycle[j]
			} else {
				p2 = background.random(rng)
			}
			np1, np2 := recombine(p1, p2, rng)
			if np1 == np2 || np1.selfLoop() || np2.selfLoop() || inAny(np1) || inAny(np2) {
				continue
			}
			if fromRecycle {
				recycle[j] = recycle[len(recycle)-1]
				recycle = recycle[:len(recycle)-1]
			} else {
				background.remove(p2)
			}
			background.insert(np1)
			background.insert(np2)
			placed = true
			break
		}
		if !placed {
			recycle = append(recycle, p1)
		}
	}
	return recycle
}

// rewireLastResort draws partners from a size-weighted random edge set and
// accepts candidates only when they collide with no set at all. New edges go
// into the set the partner came from, so per-set counts stay balanced.
func rewireLastResort(sets []*edgeSet, recycle []Edge, nstubs int, rng *rand.Rand) []Edge {
	inAny := func(e Edge) bool {
		for _, s := range sets {
			if s.has(e) {
				return true
			}
		}
		return false
	}
	pickSet := func() *edgeSet {
		total := 0
		for _, s := range sets {
			total += s.len()
		}
		if total == 0 {
			return nil
		}
		r := rng.IntN(total)
		for _, s := range sets {
			if r < s.len() {
				return s
			}
			r -= s.len()
		}
		return nil
	}

	last := len(recycle)
	counter := last
	attempts := nstubs / 2
	if attempts < 1 {
		attempts = 1
	}
	for len(recycle) > 0 {
		counter--
		if counter < 0 {
			if len(recycle) < last {
				last = len(recycle)
				counter = last
			} else {
				break
			}
		}
		var p1 Edge
		p1, recycle = popFront(recycle)

		placed := false
		for try := 0; try < attempts; try++ {
			src := pickSet()
			if src == nil {
				break
			}
			p2 := src.random(rng)
			np1, np2 := recombine(p1, p2, rng)
			if np1 == np2 || np1.selfLoop() || np2.selfLoop() || inAny(np1) || inAny(np2) {
				continue
			}
			src.remove(p2)
			src.insert(np1)
			src.insert(np2)
			placed = true
			break
		}
		if !placed {
			recycle = append(recycle, p1)
		}
	}
	return recycle
}
