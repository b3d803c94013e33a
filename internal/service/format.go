package service

import (
	"math"
	"strconv"
	"strings"
)

// FormatKg prints a kilogram value with the shortest exact decimal form,
// keeping one decimal place for integral values (126 -> "126.0").
func FormatKg(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
