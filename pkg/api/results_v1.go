// pkg/api/results_v1.go
package api

// CalibratedExposureV1 is the stable JSON/JSONL schema for calibrated
// exposures. Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type CalibratedExposureV1 struct {
	ExposureID string `json:"exposure_id"`
	Mode       string `json:"mode"`
	Selector   string `json:"selector"`
	RowIndex   int    `json:"row_index"`
	Kind       string `json:"kind"` // "scalar" | "curve"

	PhotMJSR    float64 `json:"photmjsr"`
	Uncertainty float64 `json:"uncertainty"`
	Nelem       int     `json:"nelem,omitempty"`

	Stages  []string `json:"stages,omitempty"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Flagged int      `json:"flagged"`

	PixarSR float64 `json:"pixar_sr,omitempty"`
	PixarA2 float64 `json:"pixar_a2,omitempty"`

	Data []float64 `json:"data,omitempty"`
	Err  []float64 `json:"err,omitempty"`
	DQ   []uint32  `json:"dq,omitempty"`
}

// LookupRowV1 is the stable schema for reference-table inspection rows.
type LookupRowV1 struct {
	Index    int    `json:"index"`
	Filter   string `json:"filter,omitempty"`
	Pupil    string `json:"pupil,omitempty"`
	Grating  string `json:"grating,omitempty"`
	Slit     string `json:"slit,omitempty"`
	Subarray string `json:"subarray,omitempty"`
	Order    int    `json:"order,omitempty"`

	Kind        string  `json:"kind"`
	PhotMJSR    float64 `json:"photmjsr"`
	Uncertainty float64 `json:"uncertainty"`
	Nelem       int     `json:"nelem,omitempty"`

	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
