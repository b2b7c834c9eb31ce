package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type rmaState struct {
	count  int
	sum    float64
	prev   float64
	primed bool
}

// RMAStream is Wilder's smoothed moving average: a cumulative mean over the
// first window samples, then prev + (x - prev)/window.
type RMAStream struct {
	*Node[rmaState]
}

func RMA(source types.TickSource, window int) *RMAStream {
	requirePeriod("RMA", window)
	lambda := 1.0 / float64(window)

	n := NewNode[rmaState](Config{Warmup: window},
		func(st *rmaState, v types.TimedValue, n *Node[rmaState]) float64 {
			x := nanFallback(v.Value, n.LastValid())
			if math.IsNaN(x) {
				return math.NaN()
			}

			if !st.primed {
				st.count++
				st.sum += x
				st.prev = st.sum / float64(st.count)
				if st.count >= window {
					st.primed = true
				}
				return st.prev
			}

			st.prev = st.prev + (x-st.prev)*lambda
			return st.prev
		})
	Bind(source, n)
	return &RMAStream{n}
}
