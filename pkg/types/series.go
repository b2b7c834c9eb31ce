package types

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/datatype/floats"
)

// Series is a read-only view over the values a stream has emitted.
// Last(0) is the most recent value; out-of-range access returns 0.
type Series interface {
	Last(i int) float64
	Index(i int) float64
	Length() int
}

func Mean(a Series, length int) float64 {
	if length > a.Length() {
		length = a.Length()
	}
	if length == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < length; i++ {
		sum += a.Last(i)
	}
	return sum / float64(length)
}

func Highest(a Series, lookback int) float64 {
	if lookback > a.Length() {
		lookback = a.Length()
	}
	highest := a.Last(0)
	for i := 1; i < lookback; i++ {
		current := a.Last(i)
		if highest < current {
			highest = current
		}
	}
	return highest
}

func Lowest(a Series, lookback int) float64 {
	if lookback > a.Length() {
		lookback = a.Length()
	}
	lowest := a.Last(0)
	for i := 1; i < lookback; i++ {
		current := a.Last(i)
		if lowest > current {
			lowest = current
		}
	}
	return lowest
}

// Stdev computes the standard deviation over the last length values with the
// given delta degrees of freedom.
func Stdev(a Series, length int, ddof int) float64 {
	if length > a.Length() {
		length = a.Length()
	}
	if length == 0 || length-ddof <= 0 {
		return 0
	}
	avg := Mean(a, length)
	s := .0
	for i := 0; i < length; i++ {
		diff := a.Last(i) - avg
		s += diff * diff
	}
	return math.Sqrt(s / float64(length-ddof))
}

// Reverse extracts the last length values into a slice ordered oldest first.
func Reverse(a Series, length int) floats.Slice {
	if length > a.Length() {
		length = a.Length()
	}
	result := make(floats.Slice, length)
	for i := 0; i < length; i++ {
		result[length-i-1] = a.Last(i)
	}
	return result
}
