package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

const (
	kamaFast = 2.0 / (2.0 + 1.0)
	kamaSlow = 2.0 / (30.0 + 1.0)
)

type kamaState struct {
	prev   float64
	primed bool
}

// KAMAStream is Kaufman's adaptive moving average: the smoothing constant
// scales with the efficiency ratio of the last window moves.
type KAMAStream struct {
	*Node[kamaState]
}

func KAMA(source types.TickSource, window int) *KAMAStream {
	requirePeriod("KAMA", window)

	n := NewNode[kamaState](Config{Warmup: window, Window: window + 1},
		func(st *kamaState, v types.TimedValue, n *Node[kamaState]) float64 {
			x := nanFallback(v.Value, n.LastValid())
			if math.IsNaN(x) {
				return math.NaN()
			}

			w := n.Window()
			if !st.primed {
				st.prev = x
				st.primed = true
				return st.prev
			}
			if w.Count() < 2 || w.HasNaN() {
				return st.prev
			}

			values := w.Snapshot()
			change := math.Abs(values[len(values)-1] - values[0])
			volatility := 0.0
			for i := 1; i < len(values); i++ {
				volatility += math.Abs(values[i] - values[i-1])
			}

			er := 0.0
			if volatility > 0 {
				er = change / volatility
			}
			sc := math.Pow(er*(kamaFast-kamaSlow)+kamaSlow, 2)

			st.prev = st.prev + sc*(x-st.prev)
			return st.prev
		})
	Bind(source, n)
	return &KAMAStream{n}
}
