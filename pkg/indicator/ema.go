package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type emaState struct {
	count  int
	sum    float64
	prev   float64
	primed bool
}

// EMAStream is the exponential moving average with multiplier 2/(window+1),
// seeded with the simple mean of the first window samples. NaN inputs are
// substituted with the last valid committed value.
type EMAStream struct {
	*Node[emaState]
}

func EMA(source types.TickSource, window int) *EMAStream {
	requirePeriod("EMA", window)
	multiplier := 2.0 / float64(window+1)

	n := NewNode[emaState](Config{Warmup: window},
		func(st *emaState, v types.TimedValue, n *Node[emaState]) float64 {
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

			st.prev = (x-st.prev)*multiplier + st.prev
			return st.prev
		})
	Bind(source, n)
	return &EMAStream{n}
}
