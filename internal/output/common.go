package output

// Output format identifiers shared by CLI validation and writer dispatch.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "exposure_id\tmode\tselector\tkind\tphotmjsr\tuncertainty\tnelem\tnpix\tflagged\tstages"
