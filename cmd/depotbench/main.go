// Command depotbench measures how fast depot answers Identity+Tag queries
// across entity counts and tag densities.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("depotbench failed")
		os.Exit(1)
	}
}
