// internal/output/rows.go
package output

import (
	"fmt"
	"strings"

	"photom-core/photom"
)

// Kind renders the conversion shape for output rows.
func Kind(r photom.Result) string {
	if r.Conv.IsCurve() {
		return "curve"
	}
	return "scalar"
}

// FormatBaseRowTSV returns the 10 base columns (no trailing newline).
func FormatBaseRowTSV(r photom.Result) string {
	stages := strings.Join(r.Stages, ",")
	if stages == "" {
		stages = "-"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%.6e\t%.6e\t%d\t%d\t%d\t%s",
		r.ExposureID, r.Mode, r.Selector, Kind(r),
		r.Conv.Factor, r.Conv.Uncertainty, r.Conv.Nelem(),
		r.Width*r.Height, r.Flagged, stages,
	)
}
