// Package pipeline orchestrates asset traversal, catalog assembly, row
// post-processing, and export, plus run summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/backmassage/drscat/internal/assets"
	"github.com/backmassage/drscat/internal/catalog"
	"github.com/backmassage/drscat/internal/config"
	"github.com/backmassage/drscat/internal/display"
	"github.com/backmassage/drscat/internal/drs"
	"github.com/backmassage/drscat/internal/export"
	"github.com/backmassage/drscat/internal/logging"
	"github.com/backmassage/drscat/internal/vocab"
)

// Run is the top-level entry point. It lists candidate assets, builds the
// catalog table with the configured convention parser, applies the optional
// controlled-vocabulary filter and latest-version selection, and writes the
// result to cfg.OutputPath.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, fetcher vocab.Fetcher) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	conv, ok := drs.Lookup(string(cfg.CMIPVersion))
	if !ok {
		return stats, fmt.Errorf("cmip-version %q is not valid; valid options include 5 and 6", cfg.CMIPVersion)
	}

	files, err := assets.List(ctx, cfg.RootPath, cfg.Depth, cfg.Workers)
	if err != nil {
		return stats, fmt.Errorf("asset traversal: %w", err)
	}
	stats.Assets = len(files)
	log.Info("Found %s candidate assets", display.FormatCount(len(files)))

	excluder, err := assets.NewExcluder(cfg.ExcludePatterns)
	if err != nil {
		return stats, fmt.Errorf("exclusion patterns: %w", err)
	}
	kept := excluder.Filter(files)
	stats.Excluded = len(files) - len(kept)
	if stats.Excluded > 0 {
		log.Debug("Excluded %s paths via %v", display.FormatCount(stats.Excluded), cfg.ExcludePatterns)
	}

	table, bstats, err := catalog.Build(ctx, kept, conv, cfg.Columns, cfg.Workers)
	if err != nil {
		return stats, err
	}
	stats.Partial = bstats.Partial
	if stats.Partial > 0 {
		log.Warn("%s files matched no filename template (partial rows kept)", display.FormatCount(stats.Partial))
	}

	table = applyVocabularyFilter(ctx, cfg, log, fetcher, conv, table, &stats)

	if cfg.PickLatestVersion {
		log.Info("Selecting latest dataset versions...")
		deduped, removed, derr := table.SelectLatest(ctx, cfg.Workers)
		if derr != nil {
			return stats, derr
		}
		table = deduped
		stats.VersionDropped = removed
		log.Info("Removed %s superseded rows", display.FormatCount(removed))
	}

	table.SortByPath()
	stats.Rows = table.Len()

	if err := export.Write(cfg.OutputPath, table); err != nil {
		return stats, fmt.Errorf("write catalog: %w", err)
	}
	if fi, serr := os.Stat(cfg.OutputPath); serr == nil {
		stats.OutputBytes = fi.Size()
	}
	stats.Elapsed = time.Since(start)

	logSummary(cfg, log, &stats)
	return stats, nil
}

// applyVocabularyFilter drops rows whose activity_id is outside the
// controlled vocabulary. Only the newer convention carries activity_id. A
// failed fetch degrades gracefully: warn and keep the unfiltered table.
func applyVocabularyFilter(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	fetcher vocab.Fetcher,
	conv drs.Convention,
	table *catalog.Table,
	stats *RunStats,
) *catalog.Table {
	if conv.ID != string(config.ConventionCMIP6) || !cfg.CVFilter {
		return table
	}
	permitted, err := fetcher.PermittedValues(ctx, "activity_id")
	if err != nil {
		log.Warn("Controlled-vocabulary fetch failed, skipping activity_id filter: %v", err)
		return table
	}
	before := table.Len()
	filtered := table.FilterIn("activity_id", permitted)
	stats.CVDropped = before - filtered.Len()
	if stats.CVDropped > 0 {
		log.Info("Dropped %s rows outside the activity_id vocabulary", display.FormatCount(stats.CVDropped))
	}
	return filtered
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Success("Catalog written: %s (%s, %s rows)",
		cfg.OutputPath,
		display.FormatBytes(stats.OutputBytes),
		display.FormatCount(stats.Rows))
	log.Info("Summary report:")
	log.Info("  Assets found:      %s", display.FormatCount(stats.Assets))
	log.Info("  Excluded by glob:  %s", display.FormatCount(stats.Excluded))
	log.Info("  Partial rows:      %s", display.FormatCount(stats.Partial))
	log.Info("  CV-filtered rows:  %s", display.FormatCount(stats.CVDropped))
	log.Info("  Superseded rows:   %s", display.FormatCount(stats.VersionDropped))
	log.Info("  Elapsed:           %s", display.FormatDuration(stats.Elapsed))
}
