package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bikematch-service/internal/catalog/model"
	"bikematch-service/internal/config"
	"bikematch-service/internal/fileio"
)

// Run executes one full pipeline pass: fetch the three sources, join them,
// write the snapshot and return it. Whole-source failures abort the run with
// no partial snapshot written; per-record problems are silent drops inside
// BuildCatalog.
func Run(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*model.Snapshot, error) {
	if err := cfg.ValidateSources(); err != nil {
		return nil, err
	}
	start := time.Now()
	timeout := time.Duration(cfg.FetchTimeoutSec) * time.Second

	// the three sources are read-only and independent: fetch them in parallel
	var modelRows, skuRows, retailRows []map[string]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		modelRows, err = fileio.FetchMaps(gctx, cfg.ModelsSrc, timeout)
		if err != nil {
			err = fmt.Errorf("models source: %w", err)
		}
		return
	})
	g.Go(func() (err error) {
		skuRows, err = fileio.FetchMaps(gctx, cfg.SkuSrc, timeout)
		if err != nil {
			err = fmt.Errorf("sku source: %w", err)
		}
		return
	})
	g.Go(func() (err error) {
		retailRows, err = fileio.FetchMaps(gctx, cfg.RetailerSrc, timeout)
		if err != nil {
			err = fmt.Errorf("retailer source: %w", err)
		}
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	models := ModelsFromMaps(modelRows)
	skus := SkusFromMaps(skuRows)
	retail := RetailerFromMaps(retailRows)

	items := BuildCatalog(models, skus, retail)
	snap := &model.Snapshot{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Items:       items,
	}

	if err := WriteSnapshot(cfg.OutputJSON, snap); err != nil {
		return nil, err
	}

	logger.Info().
		Int("models", len(models)).
		Int("skus", len(skus)).
		Int("retail_rows", len(retail)).
		Int("items", len(items)).
		Str("output", cfg.OutputJSON).
		Dur("elapsed", time.Since(start)).
		Msg("catalog generated")
	return snap, nil
}
