// Package sampler draws degree and community-size sequences from truncated
// discrete power laws, conditioned the way the generator core expects them:
// degrees sum to an even number, community sizes sum to exactly n.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"
)

var (
	// ErrBadRange indicates an empty or out-of-bounds sampling range.
	ErrBadRange = errors.New("sampler: invalid sampling range")
	// ErrMaxIter indicates no admissible sequence was found within the
	// allowed number of attempts.
	ErrMaxIter = errors.New("sampler: max iterations exceeded")
)

// powerLaw draws integers from p(x) ∝ x^(-tau) on [min, max].
type powerLaw struct {
	min     int
	weights []float64
	sampler sampleuv.Weighted
}

func newPowerLaw(tau float64, min, max int, rng *rand.Rand) *powerLaw {
	weights := make([]float64, max-min+1)
	for i := range weights {
		weights[i] = math.Pow(float64(min+i), -tau)
	}
	return &powerLaw{
		min:     min,
		weights: weights,
		sampler: sampleuv.NewWeighted(weights, rng),
	}
}

func (p *powerLaw) draw() int {
	idx, _ := p.sampler.Take()
	p.sampler.Reweight(idx, p.weights[idx])
	return p.min + idx
}

// Degrees samples n vertex degrees from a power law with exponent t1 on
// [dMin, dMax], sorted descending. The sum is made even by nudging a single
// degree inside the range; a sequence that cannot be repaired is redrawn, up
// to maxIter attempts.
func Degrees(t1 float64, dMin, dMax, n, maxIter int, rng *rand.Rand) ([]int32, error) {
	if dMin < 1 || dMin > dMax {
		return nil, fmt.Errorf("%w: degrees in [%d,%d]", ErrBadRange, dMin, dMax)
	}
	dist := newPowerLaw(t1, dMin, dMax, rng)
	for iter := 0; iter < maxIter; iter++ {
		degrees := make([]int32, n)
		sum := 0
		for i := range degrees {
			d := dist.draw()
			degrees[i] = int32(d)
			sum += d
		}
		if sum%2 == 1 && !repairParity(degrees, dMin, dMax) {
			continue
		}
		sort.Slice(degrees, func(i, j int) bool { return degrees[i] > degrees[j] })
		return degrees, nil
	}
	return nil, fmt.Errorf("degree sequence: %w (%d attempts)", ErrMaxIter, maxIter)
}

// repairParity flips the sum's parity without leaving [dMin, dMax].
func repairParity(degrees []int32, dMin, dMax int) bool {
	for i, d := range degrees {
		if int(d) > dMin {
			degrees[i]--
			return true
		}
	}
	for i, d := range degrees {
		if int(d) < dMax {
			degrees[i]++
			return true
		}
	}
	return false
}

// CommunitySizes samples community sizes from a power law with exponent t2
// on [cMin, cMax] until they cover n vertices, sorted descending. The last
// size is shrunk to land exactly on n when that keeps it >= cMin; otherwise
// the whole sequence is redrawn, up to maxIter attempts.
func CommunitySizes(t2 float64, cMin, cMax, n, maxIter int, rng *rand.Rand) ([]int32, error) {
	if cMin < 1 || cMin > cMax || cMax > n {
		return nil, fmt.Errorf("%w: community sizes in [%d,%d] for %d vertices", ErrBadRange, cMin, cMax, n)
	}
	dist := newPowerLaw(t2, cMin, cMax, rng)
	for iter := 0; iter < maxIter; iter++ {
		var sizes []int32
		sum := 0
		for sum < n {
			c := dist.draw()
			sizes = append(sizes, int32(c))
			sum += c
		}
		excess := sum - n
		last := len(sizes) - 1
		if int(sizes[last])-excess >= cMin {
			sizes[last] -= int32(excess)
			sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })
			return sizes, nil
		}
	}
	return nil, fmt.Errorf("community sizes: %w (%d attempts)", ErrMaxIter, maxIter)
}
