package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/abcd-graph-generator/pkg/abcd"
	"github.com/gilchrisn/abcd-graph-generator/pkg/config"
	"github.com/gilchrisn/abcd-graph-generator/pkg/sampler"
	"github.com/gilchrisn/abcd-graph-generator/pkg/writer"
)

// samplerStream keeps the sequence samplers off the task ids used inside the
// generator, which start at 0.
const samplerStream = 1 << 32

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if len(os.Args) < 2 {
		fmt.Println("ABCD benchmark graph generator")
		fmt.Println()
		fmt.Println("Usage: abcd <config.toml>")
		fmt.Println()
		fmt.Println("Writes the degree, community-size, community, and network files")
		fmt.Println("named in the configuration.")
		os.Exit(1)
	}

	cfg := config.New()
	if err := cfg.LoadFromFile(os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("path", os.Args[1]).Msg("failed to read configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := cfg.CreateLogger()

	seed := cfg.Seed()
	logger.Info().Uint64("seed", seed).Int("n", cfg.N()).Msg("sampling sequences")

	rng := rand.New(rand.NewPCG(seed, samplerStream))
	degrees, err := sampler.Degrees(cfg.T1(), cfg.DMin(), cfg.DMax(), cfg.N(), cfg.DMaxIter(), rng)
	if err != nil {
		logger.Fatal().Err(err).Msg("degree sampling failed")
	}
	sizes, err := sampler.CommunitySizes(cfg.T2(), cfg.CMin(), cfg.CMax(), cfg.N(), cfg.CMaxIter(), rng)
	if err != nil {
		logger.Fatal().Err(err).Msg("community-size sampling failed")
	}
	if err := writer.WriteDegrees(cfg.DegreeFile(), degrees); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DegreeFile()).Msg("failed to write degree file")
	}
	if err := writer.WriteCommunitySizes(cfg.CommunitySizeFile(), sizes); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CommunitySizeFile()).Msg("failed to write community-size file")
	}

	params, err := abcd.NewParams(degrees, sizes, cfg.ParamOptions()...)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid generation parameters")
	}

	gen := abcd.NewGenerator(params, seed, cfg.Workers(), logger)
	result, err := gen.Generate()
	if err != nil {
		logger.Fatal().Err(err).Msg("generation failed")
	}

	if err := writer.WriteCommunities(cfg.CommunityFile(), result.Clusters); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CommunityFile()).Msg("failed to write community file")
	}
	if err := writer.WriteNetwork(cfg.NetworkFile(), result.Edges); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.NetworkFile()).Msg("failed to write network file")
	}

	logger.Info().
		Str("network", cfg.NetworkFile()).
		Str("communities", cfg.CommunityFile()).
		Int("edges", len(result.Edges)).
		Int("unresolved", result.Unresolved).
		Msg("done")
}
