// Package stats holds the column statistics used by the cleaning stages.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values.
// ok is false when values is empty, since the mean is undefined.
func Mean(values []float64) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	return stat.Mean(values, nil), true
}

// StdDev returns the sample standard deviation (n-1 denominator) of values.
// ok is false with fewer than two values.
func StdDev(values []float64) (std float64, ok bool) {
	if len(values) < 2 {
		return 0, false
	}
	return stat.StdDev(values, nil), true
}

// Mode returns the most frequent value. Ties go to the lexicographically
// smallest value, so the result does not depend on input order.
// ok is false when values is empty.
func Mode(values []string) (mode string, ok bool) {
	if len(values) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, true
}

// AbsZ returns |x - mean| / std
func AbsZ(x, mean, std float64) float64 {
	return math.Abs(x-mean) / std
}
