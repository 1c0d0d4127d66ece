// Package stats provides the small set of descriptive statistics the
// pipeline needs. All functions treat an empty input as zero rather than
// returning an error, so callers can feed them filtered columns without
// guarding every call site.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// Std returns the sample standard deviation (n-1 denominator) of x.
// Slices with fewer than two elements have no spread and yield 0.
func Std(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mean := Mean(x)
	m2 := 0.0
	for _, v := range x {
		d := v - mean
		m2 += d * d
	}
	return math.Sqrt(m2 / float64(n-1))
}

// Median returns the median of x without modifying the input.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n / 2
	if n%2 == 0 {
		return (cp[mid-1] + cp[mid]) / 2
	}
	return cp[mid]
}

// MinMax returns the smallest and largest values in x.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Correlation returns the Pearson correlation coefficient between x and y
// in a single pass. Mismatched lengths or zero variance yield 0.
func Correlation(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 || len(y) != len(x) {
		return 0
	}
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		xi, yi := x[i], y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
		sumY2 += yi * yi
	}
	denom := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Quantile returns the q-th quantile (0..1) of a sorted slice using
// linear interpolation between closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
