package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlkit-telemetry/mlevent/internal/cli"
)

func main() {
	// Setup logging; the config loaded by the root command may adjust
	// level and format.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
