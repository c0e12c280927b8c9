package abcd

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// assignClusters places every vertex into a community, heaviest vertex first.
// A community is admissible for a vertex once it is large enough to absorb
// the vertex's expected intra-community degree; among admissible communities
// the choice is weighted by remaining capacity.
func assignClusters(p *Params, rng *rand.Rand) ([]int32, error) {
	n, k := p.N(), p.K()

	var mul float64
	if p.HasMu {
		mul = 1 - p.Mu
	} else {
		phi := 1.0
		for _, sc := range p.S {
			frac := float64(sc) / float64(n)
			phi -= frac * frac
		}
		mul = 1 - p.Xi*phi
	}

	slots := make([]float64, k)
	for c, sc := range p.S {
		slots[c] = float64(sc)
	}

	// All weights start at zero; a community's capacity is revealed only
	// once the frontier j admits it.
	picker := sampleuv.NewWeighted(make([]float64, k), rng)

	clusters := make([]int32, n)
	j := 0
	for i := 0; i < n; i++ {
		for j < k && mul*float64(p.W[i])+1 <= float64(p.S[j]) {
			picker.Reweight(j, slots[j])
			j++
		}
		if j == 0 {
			return nil, fmt.Errorf("%w: vertex degree %d, largest community %d", ErrInfeasibleCluster, p.W[i], p.S[0])
		}
		loc, ok := picker.Take()
		if !ok {
			return nil, fmt.Errorf("%w: vertex degree %d", ErrNoSlot, p.W[i])
		}
		slots[loc]--
		picker.Reweight(loc, slots[loc])
		clusters[i] = int32(loc + 1)
	}
	return clusters, nil
}

// memberLists groups vertex ids (1-based) by community id, index order
// preserved so each community's members stay sorted by descending degree.
func memberLists(clusters []int32, k int) [][]int32 {
	members := make([][]int32, k+1)
	for i, c := range clusters {
		members[c] = append(members[c], int32(i+1))
	}
	return members
}
