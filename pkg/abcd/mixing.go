package abcd

import "fmt"

// clusterWeights sums the degree sequence per community (1-based) and in total.
func clusterWeights(p *Params, clusters []int32) ([]float64, float64) {
	cw := make([]float64, p.K()+1)
	total := 0.0
	for i, c := range clusters {
		cw[c] += float64(p.W[i])
		total += float64(p.W[i])
	}
	return cw, total
}

// clusterXi returns the background fraction applied to each community
// (1-based). With mu it is derived locally or globally from the community
// weights; with xi it is the given value everywhere.
func clusterXi(p *Params, clusters []int32) ([]float64, error) {
	k := p.K()
	cw, total := clusterWeights(p, clusters)
	xic := make([]float64, k+1)

	switch {
	case p.HasXi:
		for c := 1; c <= k; c++ {
			xic[c] = p.Xi
		}
	case p.IsLocal:
		for c := 1; c <= k; c++ {
			x := p.Mu / (1 - cw[c]/total)
			if x >= 1 {
				return nil, fmt.Errorf("%w: local xi=%v in community %d", ErrMuTooLarge, x, c)
			}
			xic[c] = x
		}
	default:
		sq := 0.0
		for c := 1; c <= k; c++ {
			frac := cw[c] / total
			sq += frac * frac
		}
		x := p.Mu / (1 - sq)
		if x >= 1 {
			return nil, fmt.Errorf("%w: global xi=%v", ErrMuTooLarge, x)
		}
		for c := 1; c <= k; c++ {
			xic[c] = x
		}
	}
	return xic, nil
}
