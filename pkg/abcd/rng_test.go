package abcd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandRound(t *testing.T) {
	rng := newTaskRNG(1, 0)
	for i := 0; i < 100; i++ {
		require.Equal(t, 2, randRound(2.0, rng))
	}
	sum := 0
	for i := 0; i < 10000; i++ {
		v := randRound(1.5, rng)
		require.Contains(t, []int{1, 2}, v)
		sum += v
	}
	mean := float64(sum) / 10000
	require.InDelta(t, 1.5, mean, 0.05)
}

func TestWeightedPickerWithReplacement(t *testing.T) {
	rng := newTaskRNG(3, 0)
	picker := newWeightedPicker([]float64{1, 0, 3}, rng)
	counts := map[int]int{}
	for i := 0; i < 4000; i++ {
		idx, ok := picker.pick()
		require.True(t, ok)
		counts[idx]++
	}
	require.Zero(t, counts[1], "zero-weight index must never be drawn")
	require.Greater(t, counts[2], counts[0], "weight 3 should dominate weight 1")
	require.Greater(t, counts[0], 500)
}

func TestWeightedPickerExhausted(t *testing.T) {
	picker := newWeightedPicker([]float64{0, 0}, newTaskRNG(1, 0))
	_, ok := picker.pick()
	require.False(t, ok)
}

func TestNewTaskRNGStreamsIndependent(t *testing.T) {
	a := newTaskRNG(1, 1)
	b := newTaskRNG(1, 2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	require.False(t, same, "distinct tasks must get distinct streams")
}
