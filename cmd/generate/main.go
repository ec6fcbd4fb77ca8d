// One-shot catalog generation for cron/CI: reads the three source sheets,
// writes the snapshot, exits nonzero on any whole-source failure.
package main

import (
	"context"
	"os"

	catSvc "bikematch-service/internal/catalog/service"
	"bikematch-service/internal/config"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	if err := cfg.ValidateSources(); err != nil {
		logger.Error().Err(err).Msg("configuration")
		os.Exit(1)
	}

	snap, err := catSvc.Run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("generate failed")
		os.Exit(1)
	}
	logger.Info().Int("items", len(snap.Items)).Str("output", cfg.OutputJSON).Msg("done")
}
