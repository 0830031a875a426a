// internal/lookupoutput/rows.go
package lookupoutput

import (
	"fmt"
	"io"

	"photom-core/photom"
	"photom-core/phototab"
	"photom/internal/jsonutil"
	"photom/pkg/api"
)

// TSVHeader is the canonical header row for the inspector's text output.
const TSVHeader = "index\tfilter\tpupil\tgrating\tslit\tsubarray\torder\tkind\tphotmjsr\tuncertainty\tnelem\tvalid\terror"

// ToAPIRow validates one table row and renders it in the stable wire schema.
// Validation is the same conversion build the calibration path performs.
func ToAPIRow(idx int, row phototab.Row) api.LookupRowV1 {
	v := api.LookupRowV1{
		Index:       idx,
		Filter:      row.Filter,
		Pupil:       row.Pupil,
		Grating:     row.Grating,
		Slit:        row.Slit,
		Subarray:    row.Subarray,
		Order:       row.Order,
		PhotMJSR:    row.PhotMJSR,
		Uncertainty: row.Uncertainty,
		Nelem:       row.Nelem,
		Kind:        "scalar",
	}
	if row.Nelem > 0 {
		v.Kind = "curve"
	}
	if _, err := photom.Build(row); err != nil {
		v.Error = err.Error()
		return v
	}
	v.Valid = true
	return v
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// FormatRowTSV returns the 13 columns (no trailing newline).
func FormatRowTSV(v api.LookupRowV1) string {
	errCol := dash(v.Error)
	return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%.6e\t%.6e\t%d\t%t\t%s",
		v.Index, dash(v.Filter), dash(v.Pupil), dash(v.Grating), dash(v.Slit),
		dash(v.Subarray), v.Order, v.Kind, v.PhotMJSR, v.Uncertainty, v.Nelem,
		v.Valid, errCol,
	)
}

// WriteText prints one TSV line per row.
func WriteText(w io.Writer, rows []api.LookupRowV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, v := range rows {
		if _, err := fmt.Fprintln(w, FormatRowTSV(v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteJSON(w io.Writer, rows []api.LookupRowV1) error {
	return jsonutil.EncodePretty(w, rows)
}
