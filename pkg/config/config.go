// Package config reads and validates the generator's TOML configuration.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/gilchrisn/abcd-graph-generator/pkg/abcd"
)

// Config manages generator configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a new configuration with defaults. mu and xi default to -1,
// meaning unset.
func New() *Config {
	v := viper.New()

	// Graph parameters
	v.SetDefault("seed", "")
	v.SetDefault("n", 1000)
	v.SetDefault("mu", -1.0)
	v.SetDefault("xi", -1.0)
	v.SetDefault("is_cl", false)
	v.SetDefault("is_local", false)

	// Degree sampler parameters
	v.SetDefault("t1", 2.5)
	v.SetDefault("d_min", 5)
	v.SetDefault("d_max", 50)
	v.SetDefault("d_max_iter", 1000)

	// Community-size sampler parameters
	v.SetDefault("t2", 1.5)
	v.SetDefault("c_min", 50)
	v.SetDefault("c_max", 200)
	v.SetDefault("c_max_iter", 1000)

	// Performance parameters
	v.SetDefault("workers", runtime.NumCPU())

	// Logging parameters
	v.SetDefault("log_level", "info")

	// Output files
	v.SetDefault("degree_file", "degrees.dat")
	v.SetDefault("community_size_file", "community_sizes.dat")
	v.SetDefault("community_file", "communities.dat")
	v.SetDefault("network_file", "network.dat")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) N() int           { return c.v.GetInt("n") }
func (c *Config) Mu() float64      { return c.v.GetFloat64("mu") }
func (c *Config) Xi() float64      { return c.v.GetFloat64("xi") }
func (c *Config) HasMu() bool      { return c.v.GetFloat64("mu") >= 0 }
func (c *Config) HasXi() bool      { return c.v.GetFloat64("xi") >= 0 }
func (c *Config) IsCL() bool       { return c.v.GetBool("is_cl") }
func (c *Config) IsLocal() bool    { return c.v.GetBool("is_local") }
func (c *Config) T1() float64      { return c.v.GetFloat64("t1") }
func (c *Config) DMin() int        { return c.v.GetInt("d_min") }
func (c *Config) DMax() int        { return c.v.GetInt("d_max") }
func (c *Config) DMaxIter() int    { return c.v.GetInt("d_max_iter") }
func (c *Config) T2() float64      { return c.v.GetFloat64("t2") }
func (c *Config) CMin() int        { return c.v.GetInt("c_min") }
func (c *Config) CMax() int        { return c.v.GetInt("c_max") }
func (c *Config) CMaxIter() int    { return c.v.GetInt("c_max_iter") }
func (c *Config) Workers() int     { return c.v.GetInt("workers") }
func (c *Config) LogLevel() string { return c.v.GetString("log_level") }

func (c *Config) DegreeFile() string        { return c.v.GetString("degree_file") }
func (c *Config) CommunitySizeFile() string { return c.v.GetString("community_size_file") }
func (c *Config) CommunityFile() string     { return c.v.GetString("community_file") }
func (c *Config) NetworkFile() string       { return c.v.GetString("network_file") }

// Seed returns the configured seed, or a time-based one when the key is
// empty.
func (c *Config) Seed() uint64 {
	s := c.v.GetString("seed")
	if s == "" {
		return uint64(time.Now().UnixNano())
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return uint64(time.Now().UnixNano())
	}
	return u
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate rejects contradictory settings before any sampling happens.
func (c *Config) Validate() error {
	if c.N() < 1 {
		return fmt.Errorf("%w: n=%d", abcd.ErrConfigInconsistent, c.N())
	}
	if c.HasMu() == c.HasXi() {
		return fmt.Errorf("%w: exactly one of mu and xi must be given", abcd.ErrConfigInconsistent)
	}
	if c.HasMu() && c.Mu() > 1 {
		return fmt.Errorf("%w: mu=%v outside [0,1]", abcd.ErrConfigInconsistent, c.Mu())
	}
	if c.HasXi() && c.Xi() > 1 {
		return fmt.Errorf("%w: xi=%v outside [0,1]", abcd.ErrConfigInconsistent, c.Xi())
	}
	if c.HasXi() && c.IsLocal() {
		return fmt.Errorf("%w: xi cannot be combined with is_local", abcd.ErrConfigInconsistent)
	}
	if s := c.v.GetString("seed"); s != "" {
		if _, err := strconv.ParseUint(s, 10, 64); err != nil {
			return fmt.Errorf("%w: seed %q is not an unsigned integer", abcd.ErrConfigInconsistent, s)
		}
	}
	return nil
}

// ParamOptions translates the mixing settings into core parameter options.
func (c *Config) ParamOptions() []abcd.Option {
	opts := []abcd.Option{abcd.CL(c.IsCL()), abcd.Local(c.IsLocal())}
	if c.HasMu() {
		opts = append(opts, abcd.WithMu(c.Mu()))
	}
	if c.HasXi() {
		opts = append(opts, abcd.WithXi(c.Xi()))
	}
	return opts
}

// CreateLogger creates a zerolog logger based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "abcd").Logger()
}
