package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type zlemaState struct {
	prev   float64
	primed bool
}

// ZLEMAStream is the zero-lag EMA: the input is de-lagged with
// x + (x - x[lag]) before exponential smoothing, lag = (window-1)/2.
type ZLEMAStream struct {
	*Node[zlemaState]
}

func ZLEMA(source types.TickSource, window int) *ZLEMAStream {
	requirePeriod("ZLEMA", window)
	lag := (window - 1) / 2
	multiplier := 2.0 / float64(window+1)

	n := NewNode[zlemaState](Config{Warmup: window, Window: lag + 1},
		func(st *zlemaState, v types.TimedValue, n *Node[zlemaState]) float64 {
			x := nanFallback(v.Value, n.LastValid())
			if math.IsNaN(x) {
				return math.NaN()
			}

			w := n.Window()
			lagged := w.Snapshot()[0] // oldest slot, x itself until the lag fills
			if math.IsNaN(lagged) {
				lagged = x
			}
			adjusted := x + (x - lagged)

			if !st.primed {
				st.prev = adjusted
				st.primed = true
				return st.prev
			}
			st.prev = (adjusted-st.prev)*multiplier + st.prev
			return st.prev
		})
	Bind(source, n)
	return &ZLEMAStream{n}
}
