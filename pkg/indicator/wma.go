package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type wmaState struct{}

// WMAStream is the linearly weighted moving average: the newest slot weighs
// n, the oldest weighs 1.
type WMAStream struct {
	*Node[wmaState]
}

func WMA(source types.TickSource, window int) *WMAStream {
	requirePeriod("WMA", window)
	n := NewNode[wmaState](Config{Warmup: window, Window: window},
		func(_ *wmaState, _ types.TimedValue, n *Node[wmaState]) float64 {
			w := n.Window()
			if w.Count() == 0 || w.HasNaN() {
				return math.NaN()
			}
			values := w.Snapshot()
			var sum, norm float64
			for i, v := range values {
				weight := float64(i + 1)
				sum += v * weight
				norm += weight
			}
			return sum / norm
		})
	Bind(source, n)
	return &WMAStream{n}
}
