// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	RefFile       string
	SchemaFile    string
	ExposureFiles []string

	// Calibration behavior
	NoArea bool
	NoTime bool

	// Performance
	Threads int

	// Output
	Output string
	Arrays bool
	Sort   bool
	Header bool // true unless --no-header
	Quiet  bool

	Version bool
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.RefFile, "photom", "", "photom reference table (YAML) [*]")
	fs.StringVar(&opt.SchemaFile, "schema", "", "mode-schema override (YAML)")
	var exps stringSlice
	fs.Var(&exps, "exposures", "exposure JSON file(s) (repeatable) [*]")

	// Calibration behavior
	fs.BoolVar(&opt.NoArea, "no-area", false, "skip the per-pixel area stage even if the reference file has an area map [false]")
	fs.BoolVar(&opt.NoTime, "no-time", false, "skip the time-dependent correction stage [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.BoolVar(&opt.Arrays, "arrays", false, "include calibrated pixel arrays in json/jsonl output [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs for determinism (ExposureID,Mode,Selector) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-exposure warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.ExposureFiles = append([]string(exps), fs.Args()...) // positional exposure files are accepted too
	opt.Header = !noHeader

	// Validation
	if opt.RefFile == "" {
		return opt, errors.New("--photom reference table is required")
	}
	if len(opt.ExposureFiles) == 0 {
		return opt, errors.New("at least one --exposures file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" && opt.Output != "jsonl" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
