// Command drscat is the CLI entrypoint for the DRS catalog builder.
//
// It parses flags, validates configuration, and either runs diagnostics
// (--check) or builds a catalog of CMIP data assets from their paths.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/drscat/internal/check"
	"github.com/backmassage/drscat/internal/config"
	"github.com/backmassage/drscat/internal/display"
	"github.com/backmassage/drscat/internal/logging"
	"github.com/backmassage/drscat/internal/pipeline"
	"github.com/backmassage/drscat/internal/vocab"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "drscat: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "drscat: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drscat: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner()

	fetcher := vocab.NewHTTPFetcher(cfg.CVBaseURL)

	if cfg.CheckOnly {
		if !check.RunCheck(context.Background(), &cfg, log, fetcher) {
			return 1
		}
		return 0
	}

	// Resolve and validate paths: the root must exist, and the output's
	// parent directory is created if needed.
	rootAbs, err := absPath(cfg.RootPath)
	if err != nil {
		log.Error("Root path not found: %s", cfg.RootPath)
		return 1
	}
	cfg.RootPath = rootAbs
	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
		log.Error("Cannot create output directory: %s", filepath.Dir(cfg.OutputPath))
		return 1
	}

	log.Info("=== drscat v%s (%s) ===", version, commit)
	log.Info("Root:    %s", cfg.RootPath)
	log.Info("Output:  %s", cfg.OutputPath)
	log.Info("DRS:     CMIP%s", cfg.CMIPVersion)
	if cfg.PickLatestVersion {
		log.Info("Dedup:   latest version only")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// traversal and parsing stop promptly without a partial export.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	// Phase 4: Run the pipeline (list, parse, filter, dedup, export).
	if _, err := pipeline.Run(ctx, &cfg, log, fetcher); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
