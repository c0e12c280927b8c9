package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gilchrisn/abcd-graph-generator/pkg/abcd"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := New()
	require.Equal(t, 1000, c.N())
	require.False(t, c.HasMu())
	require.False(t, c.HasXi())
	require.False(t, c.IsCL())
	require.False(t, c.IsLocal())
	require.Equal(t, 2.5, c.T1())
	require.Equal(t, 1000, c.DMaxIter())
	require.Equal(t, "network.dat", c.NetworkFile())
	require.NotZero(t, c.Seed(), "empty seed falls back to a time seed")
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
seed = "42"
n = 500
t1 = 3.0
d_min = 5
d_max = 50
d_max_iter = 100
t2 = 2.0
c_min = 50
c_max = 200
c_max_iter = 100
mu = 0.2
is_cl = true
is_local = true
workers = 4
network_file = "net.tsv"
`)
	c := New()
	require.NoError(t, c.LoadFromFile(path))
	require.NoError(t, c.Validate())

	require.Equal(t, uint64(42), c.Seed())
	require.Equal(t, 500, c.N())
	require.Equal(t, 3.0, c.T1())
	require.True(t, c.HasMu())
	require.False(t, c.HasXi())
	require.Equal(t, 0.2, c.Mu())
	require.True(t, c.IsCL())
	require.True(t, c.IsLocal())
	require.Equal(t, 4, c.Workers())
	require.Equal(t, "net.tsv", c.NetworkFile())
	require.Equal(t, "degrees.dat", c.DegreeFile(), "unset keys keep their defaults")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]interface{}
	}{
		{name: "neither mu nor xi", set: map[string]interface{}{}},
		{name: "both mu and xi", set: map[string]interface{}{"mu": 0.2, "xi": 0.1}},
		{name: "mu too large", set: map[string]interface{}{"mu": 1.5}},
		{name: "xi too large", set: map[string]interface{}{"xi": 1.5}},
		{name: "xi with is_local", set: map[string]interface{}{"xi": 0.1, "is_local": true}},
		{name: "bad seed", set: map[string]interface{}{"mu": 0.2, "seed": "not-a-number"}},
		{name: "bad n", set: map[string]interface{}{"mu": 0.2, "n": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for k, v := range tt.set {
				c.Set(k, v)
			}
			require.ErrorIs(t, c.Validate(), abcd.ErrConfigInconsistent)
		})
	}
}

func TestParamOptions(t *testing.T) {
	c := New()
	c.Set("xi", 0.3)
	opts := c.ParamOptions()

	p, err := abcd.NewParams([]int32{2, 2}, []int32{2}, opts...)
	require.NoError(t, err)
	require.True(t, p.HasXi)
	require.Equal(t, 0.3, p.Xi)
	require.False(t, p.HasMu)
}

func TestCreateLogger(t *testing.T) {
	c := New()
	c.Set("log_level", "warn")
	logger := c.CreateLogger()
	require.Equal(t, "warn", logger.GetLevel().String())
}
