// internal/writers/jsonl.go
package writers

import (
	"io"

	"photom-core/photom"
	"photom/internal/jsonutil"
	"photom/internal/output"
)

// WriteJSONL writes one compact JSON object per line.
func WriteJSONL(w io.Writer, list []photom.Result, arrays bool) error {
	for _, r := range list {
		if err := jsonutil.EncodeLine(w, output.ToAPIResult(r, arrays)); err != nil {
			return err
		}
	}
	return nil
}

// StreamJSONL renders rows as they arrive.
func StreamJSONL(w io.Writer, in <-chan photom.Result, arrays bool) error {
	for r := range in {
		if err := jsonutil.EncodeLine(w, output.ToAPIResult(r, arrays)); err != nil {
			return err
		}
	}
	return nil
}
