// Package check provides the --check diagnostics: root path readability and
// controlled-vocabulary endpoint reachability.
package check

import (
	"context"
	"os"
	"time"

	"github.com/backmassage/drscat/internal/config"
	"github.com/backmassage/drscat/internal/vocab"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: verifies the root path (when given) is a
// readable directory and the controlled-vocabulary endpoint answers.
// Returns false when a hard requirement is unmet.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger, fetcher vocab.Fetcher) bool {
	log.Info("=== System Check ===")
	ok := checkRoot(cfg, log)
	checkVocabulary(ctx, cfg, log, fetcher)
	return ok
}

func checkRoot(cfg *config.Config, log Logger) bool {
	if cfg.RootPath == "" {
		log.Warn("No root path given; skipping root check")
		return true
	}
	fi, err := os.Stat(cfg.RootPath)
	if err != nil {
		log.Error("Root path not found: %s", cfg.RootPath)
		return false
	}
	if !fi.IsDir() {
		log.Error("Root path is not a directory: %s", cfg.RootPath)
		return false
	}
	if _, err := os.ReadDir(cfg.RootPath); err != nil {
		log.Error("Root path is not readable: %v", err)
		return false
	}
	log.Success("Root path readable: %s", cfg.RootPath)
	return true
}

// checkVocabulary is informational: a dead CV endpoint degrades the run
// (filter skipped) rather than blocking it, so failure here is a warning.
func checkVocabulary(ctx context.Context, cfg *config.Config, log Logger, fetcher vocab.Fetcher) {
	if !cfg.CVFilter {
		log.Info("Controlled-vocabulary filter disabled; skipping endpoint check")
		return
	}
	cctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	values, err := fetcher.PermittedValues(cctx, "activity_id")
	if err != nil {
		log.Warn("Controlled-vocabulary endpoint unreachable: %v", err)
		log.Warn("Runs will skip the activity_id filter")
		return
	}
	log.Success("Controlled vocabulary reachable (%d activity_id values)", len(values))
}
