// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"photom-core/photom"
)

// WriteText prints one TSV line per calibrated exposure.
func WriteText(w io.Writer, list []photom.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatBaseRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText renders rows as they arrive.
func StreamText(w io.Writer, in <-chan photom.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatBaseRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
