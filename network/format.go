// SPDX-License-Identifier: MIT

package network

import (
	"math"
	"strconv"
	"strings"
)

// formatFloat renders v for String methods: the shortest decimal that round
// trips, always with a fractional part ("20.0", "1.04"). Magnitudes of 1e16
// and above, or below 1e-4, switch to exponent form ("1e+16", "1e-05").
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
