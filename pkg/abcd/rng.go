package abcd

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// newTaskRNG returns the deterministic random stream for one unit of work.
// Community c is task c, the background pool is task 0, so the generated
// graph does not depend on how tasks are spread over workers.
func newTaskRNG(seed, task uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, task))
}

// randRound rounds x up with probability equal to its fractional part.
func randRound(x float64, rng *rand.Rand) int {
	fl := math.Floor(x)
	if rng.Float64() < x-fl {
		return int(fl) + 1
	}
	return int(fl)
}

// weightedPicker draws indices with replacement from a fixed weight vector.
// sampleuv.Weighted removes the taken item, so every draw puts its mass back.
type weightedPicker struct {
	sampler sampleuv.Weighted
	weights []float64
}

func newWeightedPicker(weights []float64, rng *rand.Rand) *weightedPicker {
	return &weightedPicker{
		sampler: sampleuv.NewWeighted(weights, rng),
		weights: weights,
	}
}

func (p *weightedPicker) pick() (int, bool) {
	idx, ok := p.sampler.Take()
	if !ok {
		return 0, false
	}
	p.sampler.Reweight(idx, p.weights[idx])
	return idx, true
}
