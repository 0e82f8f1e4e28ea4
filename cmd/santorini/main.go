package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/JPricey/santorini-ai/engine"
	"github.com/JPricey/santorini-ai/nnue"
	"github.com/JPricey/santorini-ai/protocol"
)

var (
	flgHashMB   int
	flgMaxDepth int
	flgWeights  string
	flgDebug    bool
)

func main() {
	flag.IntVar(&flgHashMB, "hash", 64, "transposition table size in megabytes")
	flag.IntVar(&flgMaxDepth, "depth", 32, "maximum search depth")
	flag.StringVar(&flgWeights, "weights", "", "path to an NNUE weights blob")
	flag.BoolVar(&flgDebug, "debug", false, "enable debug logging")
	flag.Parse()

	output := zerolog.ConsoleWriter{Out: os.Stderr}
	var logger zerolog.Logger
	if flgDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}

	logger.Info().
		Int("numCPU", runtime.NumCPU()).
		Int("hashMB", flgHashMB).
		Int("maxDepth", flgMaxDepth).
		Msg("starting santorini-ai")

	var weights *nnue.Weights
	if flgWeights != "" {
		f, err := os.Open(flgWeights)
		if err != nil {
			logger.Fatal().Err(err).Str("path", flgWeights).Msg("failed to open weights blob")
		}
		weights, err = nnue.Load(f)
		f.Close()
		if err != nil {
			logger.Fatal().Err(err).Str("path", flgWeights).Msg("failed to parse weights blob")
		}
	}

	searcher := engine.NewSearcher(flgHashMB, weights)
	controller := engine.NewController(searcher, flgMaxDepth)

	server := protocol.NewServer(controller, os.Stdout, logger)
	server.Go()

	if err := server.Run(os.Stdin); err != nil {
		logger.Error().Err(err).Msg("command loop exited with error")
	}

	if err := controller.End(); err != nil {
		logger.Error().Err(err).Msg("controller worker exited with error")
	}
}
