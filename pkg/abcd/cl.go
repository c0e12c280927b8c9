package abcd

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// runCL builds the graph with the Chung-Lu engine: independent weighted pair
// sampling per community, then a sequential background phase that tops the
// graph up to Σw/2 edges.
func (g *Generator) runCL(clusters []int32) (*edgeSet, error) {
	p := g.params
	xic, err := clusterXi(p, clusters)
	if err != nil {
		return nil, err
	}
	k := p.K()
	members := memberLists(clusters, k)

	sets := make([]*edgeSet, k+1)
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for c := 1; c <= k; c++ {
		eg.Go(func() error {
			sets[c] = fillClusterCL(p, members[c], xic[c], newTaskRNG(g.seed, uint64(c)))
			return nil
		})
	}
	_ = eg.Wait()

	total := p.TotalDegree()
	edges := newEdgeSet(total / 2)
	for c := 1; c <= k; c++ {
		for _, e := range sets[c].items {
			edges.insert(e)
		}
	}
	g.log.Debug().Int("intra_edges", edges.len()).Msg("per-community phase done")

	// Background phase: weighted sampling over all vertices with the
	// community's background fraction applied to each weight.
	rng := newTaskRNG(g.seed, 0)
	wwt := make([]float64, p.N())
	for i := range wwt {
		wwt[i] = xic[clusters[i]] * float64(p.W[i])
	}
	picker := newWeightedPicker(wwt, rng)
	for 2*edges.len() < total {
		a, ok := picker.pick()
		if !ok {
			g.log.Warn().Int("edges", edges.len()).Int("target", total/2).
				Msg("background weights exhausted before reaching target")
			break
		}
		b, _ := picker.pick()
		if a != b {
			edges.insert(newEdge(int32(a+1), int32(b+1)))
		}
	}
	return edges, nil
}

// fillClusterCL samples weighted vertex pairs inside one community until the
// target edge count is met. Collisions are tolerated: the set absorbs
// duplicates and sampling continues.
func fillClusterCL(p *Params, members []int32, xc float64, rng *rand.Rand) *edgeSet {
	nc := len(members)
	wc := make([]float64, nc)
	sumw := 0.0
	for j, v := range members {
		wc[j] = float64(p.W[v-1])
		sumw += wc[j]
	}
	m := randRound((1-xc)*sumw/2, rng)
	set := newEdgeSet(m)
	if nc < 2 || m <= 0 {
		return set
	}
	maxEdges := nc * (nc - 1) / 2

	picker := newWeightedPicker(wc, rng)
	for set.len() < m && set.len() < maxEdges {
		need := m - set.len()
		for t := 0; t < need; t++ {
			a, ok := picker.pick()
			if !ok {
				return set
			}
			b, _ := picker.pick()
			if a != b {
				set.insert(newEdge(members[a], members[b]))
			}
		}
	}
	return set
}
