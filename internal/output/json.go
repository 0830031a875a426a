// internal/output/json.go
package output

import (
	"io"

	"photom-core/photom"
	"photom/internal/jsonutil"
	"photom/pkg/api"
)

// ToAPIResult converts a domain Result to the stable wire schema (v1).
// The pixel arrays ride along only when arrays is set; summary consumers
// should not pay for megapixel payloads they will discard.
func ToAPIResult(r photom.Result, arrays bool) api.CalibratedExposureV1 {
	v := api.CalibratedExposureV1{
		ExposureID:  r.ExposureID,
		Mode:        r.Mode,
		Selector:    r.Selector,
		RowIndex:    r.RowIndex,
		Kind:        Kind(r),
		PhotMJSR:    r.Conv.Factor,
		Uncertainty: r.Conv.Uncertainty,
		Nelem:       r.Conv.Nelem(),
		Stages:      append([]string(nil), r.Stages...),
		Width:       r.Width,
		Height:      r.Height,
		Flagged:     r.Flagged,
		PixarSR:     r.PixelAreaSR,
		PixarA2:     r.PixelAreaA2,
	}
	if arrays {
		v.Data = append([]float64(nil), r.Data...)
		v.Err = append([]float64(nil), r.Err...)
		v.DQ = append([]uint32(nil), r.DQ...)
	}
	return v
}

func toAPIResults(list []photom.Result, arrays bool) []api.CalibratedExposureV1 {
	out := make([]api.CalibratedExposureV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r, arrays))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []photom.Result, arrays bool) error {
	return jsonutil.EncodePretty(w, toAPIResults(list, arrays))
}
