package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type minValState struct{}

// MinValStream is the minimum over the rolling window.
type MinValStream struct {
	*Node[minValState]
}

func MinVal(source types.TickSource, window int) *MinValStream {
	requirePeriod("MinVal", window)
	n := NewNode[minValState](Config{Warmup: window, Window: window},
		func(_ *minValState, _ types.TimedValue, n *Node[minValState]) float64 {
			return n.Window().Min()
		})
	Bind(source, n)
	return &MinValStream{n}
}

type maxValState struct{}

// MaxValStream is the maximum over the rolling window.
type MaxValStream struct {
	*Node[maxValState]
}

func MaxVal(source types.TickSource, window int) *MaxValStream {
	requirePeriod("MaxVal", window)
	n := NewNode[maxValState](Config{Warmup: window, Window: window},
		func(_ *maxValState, _ types.TimedValue, n *Node[maxValState]) float64 {
			return n.Window().Max()
		})
	Bind(source, n)
	return &MaxValStream{n}
}

type rangeValState struct{}

// RangeValStream is max - min over the rolling window.
type RangeValStream struct {
	*Node[rangeValState]
}

func RangeVal(source types.TickSource, window int) *RangeValStream {
	requirePeriod("RangeVal", window)
	n := NewNode[rangeValState](Config{Warmup: window, Window: window},
		func(_ *rangeValState, _ types.TimedValue, n *Node[rangeValState]) float64 {
			w := n.Window()
			mx, mn := w.Max(), w.Min()
			if math.IsNaN(mx) || math.IsNaN(mn) {
				return math.NaN()
			}
			return mx - mn
		})
	Bind(source, n)
	return &RangeValStream{n}
}
