// internal/writers/result.go
package writers

import (
	"fmt"
	"io"

	"photom-core/photom"
	"photom/internal/common"
	"photom/internal/output"
)

// StartResultWriter spins up a writer goroutine for calibrated exposures.
// json buffers (a single array needs the full set); text and jsonl stream
// unless -sort asks for deterministic order.
func StartResultWriter(out io.Writer, format string, sort, header, arrays bool, bufSize int) (chan<- photom.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan photom.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []photom.Result
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				common.SortResults(buf)
			}
			err = output.WriteJSON(out, buf, arrays)

		case output.FormatJSONL:
			if sort {
				var buf []photom.Result
				for r := range in {
					buf = append(buf, r)
				}
				common.SortResults(buf)
				err = WriteJSONL(out, buf, arrays)
			} else {
				err = StreamJSONL(out, in, arrays)
			}

		case output.FormatText:
			if sort {
				var buf []photom.Result
				for r := range in {
					buf = append(buf, r)
				}
				common.SortResults(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
