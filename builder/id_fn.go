// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// DefaultBusPrefix is the stem of the default bus ID scheme.
const DefaultBusPrefix = "Bus_"

// IDFn generates a bus name from its zero-based position in a constructor.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// NumberedIDFn returns prefix + (idx+1), e.g. "Bus_1", "Bus_2", ...
// The returned IDFn panics if idx < 0.
func NumberedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("NumberedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// ExcelColumnIDFn returns the spreadsheet-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Textbook systems often label buses this way.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithNumberedIDs sets the ID scheme to NumberedIDFn(prefix).
func WithNumberedIDs(prefix string) Option {
	return WithIDScheme(NumberedIDFn(prefix))
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}
