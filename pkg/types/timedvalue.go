package types

import (
	"math"
	"time"
)

// TimedValue is the atomic unit flowing through a computation graph: one
// sample of a time series carrying its interval time, its magnitude (which
// may be NaN) and whether the sample opens a new interval or revises the
// still-open one.
//
// Within one producer, timestamps are non-decreasing, and IsNew=false only
// ever revises the most recently emitted timestamp.
type TimedValue struct {
	Time  time.Time
	Value float64

	// IsNew marks a committed sample. A false value means the sample is a
	// tentative revision of the newest slot.
	IsNew bool
}

// NewTick wraps a committed sample.
func NewTick(t time.Time, v float64) TimedValue {
	return TimedValue{Time: t, Value: v, IsNew: true}
}

// RevisedTick wraps a tentative revision of the most recent sample.
func RevisedTick(t time.Time, v float64) TimedValue {
	return TimedValue{Time: t, Value: v, IsNew: false}
}

func (v TimedValue) IsNaN() bool {
	return math.IsNaN(v.Value)
}
