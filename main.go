package main

import (
	"flag"
	"os"

	"hog/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runExperiments := flag.Bool("run_experiments", false, "run the strategy experiment suite")
	debug := flag.Bool("debug", false, "enable per-turn debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if !*runExperiments {
		flag.Usage()
		return
	}

	cfg, err := experiments.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load experiment config")
	}
	if err := experiments.RunAll(cfg); err != nil {
		log.Fatal().Err(err).Msg("experiment suite failed")
	}
}
