package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type mdaState struct {
	prevActual float64
	primed     bool
}

// MDAStream is the mean directional accuracy: the fraction of slots in the
// window where the predicted channel called the direction of the actual
// move correctly. The first slot only seeds the previous value and emits
// NaN. A NaN prediction falls back to the previous actual (a no-change
// call).
type MDAStream struct {
	*Node[mdaState]
}

func MDA(actual, predicted types.TickSource, window int) *MDAStream {
	requirePeriod("MDA", window)
	n := NewNode[mdaState](Config{Warmup: window + 1, Window: window, SelfFeed: true},
		func(st *mdaState, v types.TimedValue, n *Node[mdaState]) float64 {
			pair, _ := n.Pair()

			if !st.primed {
				st.prevActual = v.Value
				st.primed = true
				return math.NaN()
			}

			p := nanFallback(pair.Value, st.prevActual)
			hit := 0.0
			if sign(v.Value-st.prevActual) == sign(p-st.prevActual) {
				hit = 1.0
			}
			n.Window().Add(hit, v.IsNew)
			st.prevActual = v.Value

			return n.Window().Average()
		})
	BindPair(actual, predicted, n)
	return &MDAStream{n}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
