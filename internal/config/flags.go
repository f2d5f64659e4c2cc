package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into catalog, vocabulary, display, and utility.
// List-valued flags (--exclude, --columns) take comma-separated values.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("drscat", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var util utilityFlags

	defineCatalogFlags(fs, cfg)
	defineVocabularyFlags(fs, cfg, &util)
	defineDisplayFlags(fs, cfg, &util)
	defineUtilityFlags(fs, &util)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyUtilityFlags(cfg, &util)

	if util.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if util.showVersion {
		fmt.Fprintln(os.Stdout, "drscat v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// utilityFlags holds flags that are applied after Parse. These either invert
// a default (noCVFilter -> CVFilter=false) or trigger exit (showHelp, showVersion).
type utilityFlags struct {
	noCVFilter  bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCatalogFlags registers --cmip-version, --output, --depth, --latest,
// --exclude, --columns, --workers.
func defineCatalogFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&conventionValue{&cfg.CMIPVersion}, "cmip-version", "CMIP phase: 5 | 6")
	fs.Var(&conventionValue{&cfg.CMIPVersion}, "m", "Same as --cmip-version")
	fs.StringVar(&cfg.OutputPath, "output", "", "File path for the built catalog (.csv, .csv.gz, .db, .sqlite)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Same as --output")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "Directory fan-out depth for traversal")
	fs.IntVar(&cfg.Depth, "d", cfg.Depth, "Same as --depth")
	fs.BoolVar(&cfg.PickLatestVersion, "latest", false, "Catalog only the latest version of each dataset")
	fs.Var(&listValue{&cfg.ExcludePatterns}, "exclude", "Comma-separated glob patterns of paths to skip")
	fs.Var(&listValue{&cfg.Columns}, "columns", "Comma-separated override of the output column list")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel workers for parsing and deduplication")
	fs.IntVar(&cfg.Workers, "j", cfg.Workers, "Same as --workers")
}

// defineVocabularyFlags registers --no-cv-filter and --cv-url.
func defineVocabularyFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.noCVFilter, "no-cv-filter", false, "Skip the controlled-vocabulary filter on activity_id")
	fs.StringVar(&cfg.CVBaseURL, "cv-url", cfg.CVBaseURL, "Base URL of the controlled-vocabulary documents")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics (root path, CV endpoint) and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// applyUtilityFlags copies inverted flag values into cfg.
func applyUtilityFlags(cfg *Config, u *utilityFlags) {
	if u.noCVFilter {
		cfg.CVFilter = false
	}
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets RootPath from the single positional arg when not
// in CheckOnly mode. In CheckOnly mode the root path is optional.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		if len(args) == 1 {
			cfg.RootPath = NormalizeDirArg(args[0])
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one root path argument")
	}
	cfg.RootPath = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "drscat v" + version + " - CMIP data-reference-syntax catalog builder"},
		{"", ""},
		{"  drscat [OPTIONS] <root_path>", ""},
		{"", ""},
		{"Catalog", ""},
		{"  -m, --cmip-version <5|6>", "CMIP phase (required)"},
		{"  -o, --output <path>", "Catalog output path (.csv, .csv.gz, .db, .sqlite; required)"},
		{"  -d, --depth <n>", "Traversal fan-out depth (default: 4)"},
		{"  --latest", "Keep only the latest version of each dataset"},
		{"  --exclude <glob,glob>", "Path globs to skip (default: */files/*,*/latest/*)"},
		{"  --columns <a,b,c>", "Override the output column list"},
		{"  -j, --workers <n>", "Parallel workers (default: number of CPUs)"},
		{"", ""},
		{"Controlled vocabulary", ""},
		{"  --no-cv-filter", "Skip the activity_id vocabulary filter (CMIP6)"},
		{"  --cv-url <url>", "Base URL of the CV documents"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (root path, CV endpoint) and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so enum and list types work with flag.Var.

type conventionValue struct{ p *Convention }

func (c *conventionValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *conventionValue) Set(s string) error {
	switch strings.TrimSpace(s) {
	case "5":
		*c.p = ConventionCMIP5
	case "6":
		*c.p = ConventionCMIP6
	default:
		return fmt.Errorf("cmip-version %q is not valid; valid options include 5 and 6", s)
	}
	return nil
}

type listValue struct{ p *[]string }

func (l *listValue) String() string {
	if l.p == nil {
		return ""
	}
	return strings.Join(*l.p, ",")
}

func (l *listValue) Set(s string) error {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fmt.Errorf("empty list value")
	}
	*l.p = out
	return nil
}
