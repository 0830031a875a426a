package output

import "testing"

func TestTSVHeader_Stable(t *testing.T) {
	const want = "exposure_id\tmode\tselector\tkind\tphotmjsr\tuncertainty\tnelem\tnpix\tflagged\tstages"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}
