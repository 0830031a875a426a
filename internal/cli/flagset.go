// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"photom/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: photometric flux calibration

Applies a photom reference table to science exposures: selects the
calibration row matching each exposure's instrument configuration and
converts pixel values to surface-brightness units, propagating
uncertainty and data-quality flags.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}
