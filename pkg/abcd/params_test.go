package abcd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParamsSortsDescending(t *testing.T) {
	p, err := NewParams([]int32{1, 3, 2, 3}, []int32{1, 3}, WithMu(0.2))
	require.NoError(t, err)
	require.Equal(t, []int32{3, 3, 2, 1}, p.W)
	require.Equal(t, []int32{3, 1}, p.S)
	require.Equal(t, 4, p.N())
	require.Equal(t, 2, p.K())
	require.Equal(t, 9, p.TotalDegree())
}

func TestNewParamsValidation(t *testing.T) {
	tests := []struct {
		name string
		w    []int32
		s    []int32
		opts []Option
	}{
		{
			name: "sizes do not sum to n",
			w:    []int32{3, 3, 2, 2, 1},
			s:    []int32{3, 3},
			opts: []Option{WithMu(0.2)},
		},
		{
			name: "both mu and xi",
			w:    []int32{2, 2},
			s:    []int32{2},
			opts: []Option{WithMu(0.2), WithXi(0.1)},
		},
		{
			name: "neither mu nor xi",
			w:    []int32{2, 2},
			s:    []int32{2},
		},
		{
			name: "mu out of range",
			w:    []int32{2, 2},
			s:    []int32{2},
			opts: []Option{WithMu(1.5)},
		},
		{
			name: "xi out of range",
			w:    []int32{2, 2},
			s:    []int32{2},
			opts: []Option{WithXi(-0.5)},
		},
		{
			name: "xi with local mixing",
			w:    []int32{2, 2},
			s:    []int32{2},
			opts: []Option{WithXi(0.1), Local(true)},
		},
		{
			name: "empty degree sequence",
			w:    nil,
			s:    nil,
			opts: []Option{WithMu(0.2)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParams(tt.w, tt.s, tt.opts...)
			require.ErrorIs(t, err, ErrConfigInconsistent)
		})
	}
}

func TestNewParamsCopiesInput(t *testing.T) {
	w := []int32{1, 2}
	s := []int32{2}
	p, err := NewParams(w, s, WithXi(0.5))
	require.NoError(t, err)
	w[0] = 99
	require.Equal(t, []int32{2, 1}, p.W)
}
