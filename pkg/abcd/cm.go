package abcd

import (
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// cmClusterResult is the thread-local output of one community task: the
// accepted edge set, the collisions local rewiring could not place, and the
// integer internal degree of each member (aligned with the member list).
type cmClusterResult struct {
	edges     *edgeSet
	recycle   []Edge
	wInternal []int32
}

// runCM builds the graph with the configuration model: split each degree
// into internal and background stubs, match stubs per community and in the
// background pool, then rewire collisions at community, background, and
// cross-community scope.
func (g *Generator) runCM(clusters []int32) ([]Edge, int, error) {
	p := g.params
	xic, err := clusterXi(p, clusters)
	if err != nil {
		return nil, 0, err
	}
	n, k := p.N(), p.K()
	members := memberLists(clusters, k)

	results := make([]cmClusterResult, k+1)
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for c := 1; c <= k; c++ {
		eg.Go(func() error {
			results[c] = cmCluster(p, members[c], xic[c], newTaskRNG(g.seed, uint64(c)))
			return nil
		})
	}
	_ = eg.Wait()

	clusterUnresolved := 0
	wInternal := make([]int32, n)
	for c := 1; c <= k; c++ {
		clusterUnresolved += len(results[c].recycle)
		for j, v := range members[c] {
			wInternal[v-1] = results[c].wInternal[j]
		}
	}
	if clusterUnresolved > 0 {
		g.log.Warn().Int("count", clusterUnresolved).Msg("unresolved community collisions")
	}

	// Background pool: one distinguished task matching the leftover stubs of
	// every vertex.
	rng := newTaskRNG(g.seed, 0)
	globalStubs := make([]int32, 0, p.TotalDegree())
	for i := 0; i < n; i++ {
		for t := wInternal[i]; t < p.W[i]; t++ {
			globalStubs = append(globalStubs, int32(i+1))
		}
	}
	rng.Shuffle(len(globalStubs), func(a, b int) {
		globalStubs[a], globalStubs[b] = globalStubs[b], globalStubs[a]
	})
	background := newEdgeSet(len(globalStubs) / 2)
	var recycle []Edge
	for i := 0; i+1 < len(globalStubs); i += 2 {
		e := newEdge(globalStubs[i], globalStubs[i+1])
		if e.selfLoop() || !background.insert(e) {
			recycle = append(recycle, e)
		}
	}
	if len(recycle) > 0 {
		g.log.Warn().Int("count", len(recycle)).Msg("collisions after background stub matching")
	}

	// Reconciliation: a background edge duplicated inside some community set
	// is pulled out of the background and recycled.
	conflicts := make([][]Edge, k+1)
	var rg errgroup.Group
	rg.SetLimit(g.workers)
	for c := 1; c <= k; c++ {
		rg.Go(func() error {
			var cf []Edge
			for _, e := range results[c].edges.items {
				if background.has(e) {
					cf = append(cf, e)
				}
			}
			conflicts[c] = cf
			return nil
		})
	}
	_ = rg.Wait()
	clusterSets := make([]*edgeSet, 0, k)
	for c := 1; c <= k; c++ {
		clusterSets = append(clusterSets, results[c].edges)
		for _, e := range conflicts[c] {
			background.remove(e)
			recycle = append(recycle, e)
		}
	}

	recycle = rewireGlobal(background, clusterSets, recycle, len(globalStubs), rng)

	// Last resort: partners come from any edge set, weighted by size.
	allSets := append(clusterSets, background)
	totalStubs := p.TotalDegree()
	recycle = rewireLastResort(allSets, recycle, totalStubs, rng)

	unresolved := clusterUnresolved + len(recycle)
	if len(recycle) > 0 {
		g.log.Warn().
			Int("count", len(recycle)).
			Float64("fraction", 2*float64(unresolved)/float64(totalStubs)).
			Msg("unresolved background collisions")
	}

	edges := make([]Edge, 0, totalStubs/2)
	for _, s := range allSets {
		edges = append(edges, s.items...)
	}
	return edges, unresolved, nil
}

// cmCluster runs one community task: split degrees, match stubs, rewire
// locally. Everything here is thread-local scratch.
func cmCluster(p *Params, members []int32, xc float64, rng *rand.Rand) cmClusterResult {
	nc := len(members)

	// Raw internal weights; the vertex of maximum raw weight absorbs the
	// parity correction so the community's stub count is even.
	wir := make([]float64, nc)
	maxIdx := 0
	for j, v := range members {
		wir[j] = float64(p.W[v-1]) * (1 - xc)
		if wir[j] > wir[maxIdx] {
			maxIdx = j
		}
	}
	wInternal := make([]int32, nc)
	sum := 0
	for j := range wir {
		if j == maxIdx {
			continue
		}
		wInternal[j] = int32(randRound(wir[j], rng))
		sum += int(wInternal[j])
	}
	wMax := int(math.Floor(wir[maxIdx]))
	if (sum+wMax)%2 == 1 {
		wMax++
	}
	wInternal[maxIdx] = int32(wMax)

	stubs := make([]int32, 0, sum+wMax)
	for j, v := range members {
		for t := int32(0); t < wInternal[j]; t++ {
			stubs = append(stubs, v)
		}
	}
	rng.Shuffle(len(stubs), func(a, b int) {
		stubs[a], stubs[b] = stubs[b], stubs[a]
	})

	edges := newEdgeSet(len(stubs) / 2)
	var recycle []Edge
	for i := 0; i+1 < len(stubs); i += 2 {
		e := newEdge(stubs[i], stubs[i+1])
		if e.selfLoop() || !edges.insert(e) {
			recycle = append(recycle, e)
		}
	}
	recycle = rewireLocal(edges, recycle, len(stubs), rng)

	return cmClusterResult{edges: edges, recycle: recycle, wInternal: wInternal}
}
