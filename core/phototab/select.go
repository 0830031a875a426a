// core/phototab/select.go
package phototab

import (
	"errors"
	"fmt"
	"strings"
)

// Selection failures. Zero matches means the exposure's configuration is
// outside the table's coverage; more than one match is an integrity defect in
// the reference file itself and is never resolved by picking the first row.
var (
	ErrNoMatchingRow  = errors.New("no matching calibration row")
	ErrAmbiguousMatch = errors.New("ambiguous calibration row match")
)

// norm is the canonical form used for selector comparison: trimmed and
// upper-cased. Reference files and exposure headers disagree on case often
// enough that exact byte equality would be a footgun.
func norm(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func fieldEqual(r Row, field string, k Key) bool {
	switch field {
	case FieldFilter:
		return norm(r.Filter) == norm(k.Filter)
	case FieldPupil:
		return norm(r.Pupil) == norm(k.Pupil)
	case FieldGrating:
		return norm(r.Grating) == norm(k.Grating)
	case FieldSlit:
		return norm(r.Slit) == norm(k.Slit)
	case FieldSubarray:
		return norm(r.Subarray) == norm(k.Subarray)
	case FieldOrder:
		return r.Order == k.Order
	}
	return false
}

// KeyString renders the fields of k named by fields, for error messages and
// output rows.
func KeyString(fields []string, k Key) string {
	if len(fields) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldFilter:
			parts = append(parts, "filter="+norm(k.Filter))
		case FieldPupil:
			parts = append(parts, "pupil="+norm(k.Pupil))
		case FieldGrating:
			parts = append(parts, "grating="+norm(k.Grating))
		case FieldSlit:
			parts = append(parts, "slit="+norm(k.Slit))
		case FieldSubarray:
			parts = append(parts, "subarray="+norm(k.Subarray))
		case FieldOrder:
			parts = append(parts, fmt.Sprintf("order=%d", k.Order))
		}
	}
	return strings.Join(parts, ",")
}

// SelectRow scans the table for the unique row whose selector fields equal
// key across all required fields. Comparison is exact after case
// normalization; string fields the mode does not require are ignored. The
// returned index refers into t.Rows.
func SelectRow(t *Table, fields []string, key Key) (Row, int, error) {
	matched := -1
	for i := range t.Rows {
		ok := true
		for _, f := range fields {
			if !fieldEqual(t.Rows[i], f, key) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if matched >= 0 {
			return Row{}, -1, fmt.Errorf("%w: rows %d and %d both match %s",
				ErrAmbiguousMatch, matched, i, KeyString(fields, key))
		}
		matched = i
	}
	if matched < 0 {
		return Row{}, -1, fmt.Errorf("%w for %s", ErrNoMatchingRow, KeyString(fields, key))
	}
	return t.Rows[matched], matched, nil
}
