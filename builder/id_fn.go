package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex label. It must be pure: the same
// idx always yields the same label, and distinct indices distinct labels.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal form of idx: 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet column names: 0->"A", 25->"Z", 26->"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be >= 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// PrefixIDFn returns an IDFn producing prefix + decimal index: "v0", "v1", ...
// The returned function panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be >= 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
