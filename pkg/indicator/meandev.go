package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type meanDevState struct{}

// MeanAbsDevStream is the mean absolute deviation from the window mean.
type MeanAbsDevStream struct {
	*Node[meanDevState]
}

func MeanAbsDev(source types.TickSource, window int) *MeanAbsDevStream {
	requirePeriod("MeanAbsDev", window)
	n := NewNode[meanDevState](Config{Warmup: window, Window: window},
		func(_ *meanDevState, _ types.TimedValue, n *Node[meanDevState]) float64 {
			w := n.Window()
			if w.Count() == 0 || w.HasNaN() {
				return math.NaN()
			}
			mean := w.Average()
			s := 0.0
			for _, v := range w.Snapshot() {
				s += math.Abs(v - mean)
			}
			return s / float64(w.Count())
		})
	Bind(source, n)
	return &MeanAbsDevStream{n}
}
