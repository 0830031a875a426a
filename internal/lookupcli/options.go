// internal/lookupcli/options.go
package lookupcli

import (
	"errors"
	"flag"
	"fmt"

	"photom/internal/version"
)

// Options holds all CLI flags for the reference-table inspection tool.
type Options struct {
	RefFile    string
	SchemaFile string

	// Lookup key; a non-empty Mode switches from validate-all to lookup.
	Mode     string
	Filter   string
	Pupil    string
	Grating  string
	Slit     string
	Subarray string
	Order    int

	Output string
	Header bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: photom reference table inspector

Validates every row of a photom reference table (element counts,
wavelength monotonicity) or, given --mode and selector values,
resolves the row an exposure with that configuration would use.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.RefFile, "photom", "", "photom reference table (YAML) [*]")
	fs.StringVar(&opt.SchemaFile, "schema", "", "mode-schema override (YAML)")

	fs.StringVar(&opt.Mode, "mode", "", "instrument mode for key lookup (omit to validate all rows)")
	fs.StringVar(&opt.Filter, "filter", "", "filter selector value")
	fs.StringVar(&opt.Pupil, "pupil", "", "pupil selector value")
	fs.StringVar(&opt.Grating, "grating", "", "grating selector value")
	fs.StringVar(&opt.Slit, "slit", "", "slit selector value")
	fs.StringVar(&opt.Subarray, "subarray", "", "subarray selector value")
	fs.IntVar(&opt.Order, "order", 0, "spectral order selector value [0]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

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
	opt.Header = !noHeader

	if opt.RefFile == "" {
		return opt, errors.New("--photom reference table is required")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
