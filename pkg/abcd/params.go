package abcd

import (
	"fmt"
	"sort"
)

// Params holds the validated inputs of a single generation run. Build it with
// NewParams; treat it as immutable afterwards.
type Params struct {
	// W is the prescribed degree sequence, sorted descending.
	W []int32
	// S is the prescribed community-size sequence, sorted descending.
	S []int32
	// Mu is the mixing parameter; valid only when HasMu.
	Mu float64
	// Xi is the background-graph fraction; valid only when HasXi.
	Xi float64

	HasMu   bool
	HasXi   bool
	IsCL    bool
	IsLocal bool
}

// Option configures Params during construction.
type Option func(*Params)

// WithMu sets the mixing parameter mu.
func WithMu(mu float64) Option {
	return func(p *Params) { p.Mu = mu; p.HasMu = true }
}

// WithXi sets the background-graph fraction xi.
func WithXi(xi float64) Option {
	return func(p *Params) { p.Xi = xi; p.HasXi = true }
}

// CL selects the Chung-Lu engine instead of the configuration model.
func CL(on bool) Option {
	return func(p *Params) { p.IsCL = on }
}

// Local enforces the mixing constraint per community instead of globally.
func Local(on bool) Option {
	return func(p *Params) { p.IsLocal = on }
}

// NewParams copies the degree and community-size sequences, sorts both
// descending, and validates the parameter combination.
func NewParams(w, s []int32, opts ...Option) (*Params, error) {
	p := &Params{
		W: append([]int32(nil), w...),
		S: append([]int32(nil), s...),
	}
	for _, opt := range opts {
		opt(p)
	}

	sort.Slice(p.W, func(i, j int) bool { return p.W[i] > p.W[j] })
	sort.Slice(p.S, func(i, j int) bool { return p.S[i] > p.S[j] })

	if len(p.W) == 0 {
		return nil, fmt.Errorf("%w: empty degree sequence", ErrConfigInconsistent)
	}
	total := 0
	for _, sc := range p.S {
		total += int(sc)
	}
	if total != len(p.W) {
		return nil, fmt.Errorf("%w: community sizes sum to %d, want %d vertices", ErrConfigInconsistent, total, len(p.W))
	}
	if p.HasMu == p.HasXi {
		return nil, fmt.Errorf("%w: exactly one of mu and xi must be given", ErrConfigInconsistent)
	}
	if p.HasMu && (p.Mu < 0 || p.Mu > 1) {
		return nil, fmt.Errorf("%w: mu=%v outside [0,1]", ErrConfigInconsistent, p.Mu)
	}
	if p.HasXi && (p.Xi < 0 || p.Xi > 1) {
		return nil, fmt.Errorf("%w: xi=%v outside [0,1]", ErrConfigInconsistent, p.Xi)
	}
	if p.HasXi && p.IsLocal {
		return nil, fmt.Errorf("%w: xi cannot be combined with local mixing", ErrConfigInconsistent)
	}
	return p, nil
}

// N returns the number of vertices.
func (p *Params) N() int { return len(p.W) }

// K returns the number of communities.
func (p *Params) K() int { return len(p.S) }

// TotalDegree returns the sum of the degree sequence.
func (p *Params) TotalDegree() int {
	total := 0
	for _, d := range p.W {
		total += int(d)
	}
	return total
}
