// internal/common/sort.go
package common

import (
	"sort"

	"photom-core/photom"
)

// LessResult defines a stable order for calibrated exposures (for -sort).
func LessResult(a, b photom.Result) bool {
	if a.ExposureID != b.ExposureID {
		return a.ExposureID < b.ExposureID
	}
	if a.Mode != b.Mode {
		return a.Mode < b.Mode
	}
	return a.Selector < b.Selector
}

func SortResults(rs []photom.Result) {
	sort.Slice(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
