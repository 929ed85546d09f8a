// Package stats holds the small amount of arithmetic used to score passers.
package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a table cell as a number. Thousands separators are
// ignored and anything that is not a number counts as zero.
func ParseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the n-1 standard deviation. It is 0 when n <= 1.
func SampleStdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	mean := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// ZScore standardizes v. A zero spread yields 0.
func ZScore(v, mean, stddev float64) float64 {
	if stddev == 0 {
		return 0
	}
	return (v - mean) / stddev
}

// Format renders a score with two decimals, "0.00" when it is not finite.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", v)
}
