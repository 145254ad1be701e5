package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into dedup, behavior, display, and utility.
// Exit-triggering flags (--help, --version) are applied after Parse so the
// full flag set is known when printing usage.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X github.com/aziksh-ospanov/kip-dataset-scripts/internal/config.version=...".
var version = "1.0.0"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, bad enum value).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("dedup", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var util utilityFlags

	defineDedupFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &util)
	defineUtilityFlags(fs, &util)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyColorFlags(cfg, &util)

	if util.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if util.showVersion {
		fmt.Fprintln(os.Stdout, "dedup v"+version)
		os.Exit(0)
	}

	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	return nil
}

// utilityFlags holds flags that are applied after Parse.
// These either resolve a pair of switches (color/no-color) or trigger exit.
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	noProgress  bool
	showVersion bool
	showHelp    bool
}

// defineDedupFlags registers --input_dir, --method, --threshold, --delete.
func defineDedupFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InputDir, "input_dir", "", "Root directory containing class folders to scan")
	fs.StringVar(&cfg.InputDir, "i", "", "Same as --input_dir")
	fs.Var(&hashMethodValue{&cfg.Method}, "method", "Hash method: phash | dhash | whash | ahash")
	fs.Var(&hashMethodValue{&cfg.Method}, "m", "Same as --method")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Hamming distance threshold; lower is stricter")
	fs.IntVar(&cfg.Threshold, "t", cfg.Threshold, "Same as --threshold")
	fs.BoolVar(&cfg.Delete, "delete", false, "Permanently delete duplicates (default: dry run)")
}

// defineDisplayFlags registers --color, --no-color, --no-progress, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&u.noProgress, "no-progress", false, "Disable the hashing progress bar")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
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

// applyColorFlags resolves the color/no-color pair and --no-progress into cfg.
func applyColorFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
	if u.noProgress {
		cfg.ShowProgress = false
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "dedup v" + version + " — perceptual-hash image deduplicator"},
		{"", ""},
		{"  dedup --input_dir <path> [OPTIONS]", ""},
		{"", ""},
		{"Dedup", ""},
		{"  -i, --input_dir <path>", "Root directory to scan (required)"},
		{"  -m, --method <name>", "phash | dhash | whash | ahash (default: phash)"},
		{"  -t, --threshold <int>", "Max Hamming distance (default: 10)"},
		{"  --delete", "Delete duplicates; without it, dry run only"},
		{"", ""},
		{"Display", ""},
		{"  --no-progress", "Disable the hashing progress bar"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (input dir, methods, extensions)"},
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

// flag.Value adapter so the HashMethod enum works with flag.Var.

type hashMethodValue struct{ p *HashMethod }

func (h *hashMethodValue) String() string {
	if h.p == nil {
		return ""
	}
	return string(*h.p)
}

func (h *hashMethodValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "phash":
		*h.p = MethodPHash
	case "dhash":
		*h.p = MethodDHash
	case "whash":
		*h.p = MethodWHash
	case "ahash":
		*h.p = MethodAHash
	default:
		return fmt.Errorf("invalid method %q (use 'phash', 'dhash', 'whash' or 'ahash')", s)
	}
	return nil
}
