package indicator

import (
	"math"
	"sort"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type medianState struct{}

// MedianStream is the median over the rolling window, computed from an
// ordered snapshot of the currently held slots.
type MedianStream struct {
	*Node[medianState]
}

func Median(source types.TickSource, window int) *MedianStream {
	requirePeriod("Median", window)
	n := NewNode[medianState](Config{Warmup: window, Window: window},
		func(_ *medianState, _ types.TimedValue, n *Node[medianState]) float64 {
			w := n.Window()
			if w.Count() == 0 || w.HasNaN() {
				return math.NaN()
			}
			return medianOf(w.Snapshot())
		})
	Bind(source, n)
	return &MedianStream{n}
}

func medianOf(values []float64) float64 {
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

type medianAbsDevState struct{}

// MedianAbsDevStream is the median absolute deviation from the window
// median.
type MedianAbsDevStream struct {
	*Node[medianAbsDevState]
}

func MedianAbsDev(source types.TickSource, window int) *MedianAbsDevStream {
	requirePeriod("MedianAbsDev", window)
	n := NewNode[medianAbsDevState](Config{Warmup: window, Window: window},
		func(_ *medianAbsDevState, _ types.TimedValue, n *Node[medianAbsDevState]) float64 {
			w := n.Window()
			if w.Count() == 0 || w.HasNaN() {
				return math.NaN()
			}
			values := w.Snapshot()
			m := medianOf(append([]float64(nil), values...))
			for i, v := range values {
				values[i] = math.Abs(v - m)
			}
			return medianOf(values)
		})
	Bind(source, n)
	return &MedianAbsDevStream{n}
}
