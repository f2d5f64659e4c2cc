// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// --- Enum types for validated string fields ---

// Convention selects the DRS revision used to parse asset paths.
type Convention string

const (
	ConventionCMIP5 Convention = "5" // Older convention (institute/model/experiment/... layout).
	ConventionCMIP6 Convention = "6" // Newer convention (mip_era/activity/institution/... layout).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultCVBaseURL is the root of the raw WCRP CMIP6 controlled-vocabulary
// documents. Individual fields resolve to <base>/CMIP6_<field>.json.
const DefaultCVBaseURL = "https://raw.githubusercontent.com/WCRP-CMIP/CMIP6_CVs/master"

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (root from the positional arg, output from --output).
	RootPath   string
	OutputPath string

	// Catalog settings.
	CMIPVersion       Convention
	Depth             int      // Default: 4. Directory fan-out depth for traversal.
	ExcludePatterns   []string // Default: */files/* and */latest/*.
	PickLatestVersion bool     // Default: false. Keep only the newest version of each dataset.
	Columns           []string // Optional override of the convention column schema.
	Workers           int      // Default: runtime.NumCPU(). Parallelism for parse and dedup.

	// Controlled vocabulary.
	CVFilter  bool   // Default: true. Filter CMIP6 rows on activity_id.
	CVBaseURL string // Default: DefaultCVBaseURL.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults set. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Depth:             4,
		ExcludePatterns:   []string{"*/files/*", "*/latest/*"},
		PickLatestVersion: false,
		Workers:           runtime.NumCPU(),
		CVFilter:          true,
		CVBaseURL:         DefaultCVBaseURL,
		ColorMode:         ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and required paths. Configuration errors are
// fatal before any traversal begins; per-file parse failures never are.
func (c *Config) Validate() error {
	switch c.CMIPVersion {
	case ConventionCMIP5, ConventionCMIP6:
		// valid
	case "":
		if !c.CheckOnly {
			return errors.New("missing --cmip-version (use 5 or 6)")
		}
	default:
		return fmt.Errorf("cmip-version %q is not valid; valid options include 5 and 6", string(c.CMIPVersion))
	}

	if c.Depth < 1 {
		return errors.New("depth must be at least 1")
	}
	if c.Workers < 1 {
		c.Workers = 1
	}

	if c.CheckOnly {
		return nil
	}
	if c.RootPath == "" {
		return errors.New("need a root path argument (root of the CMIP project output)")
	}
	if c.OutputPath == "" {
		return errors.New("please provide --output, e.g. ./cmip6.csv.gz")
	}
	return nil
}
