package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type momentumState struct{}

// MomentumStream emits x - x[window], NaN until enough history is held.
type MomentumStream struct {
	*Node[momentumState]
}

func Momentum(source types.TickSource, window int) *MomentumStream {
	requirePeriod("Momentum", window)
	n := NewNode[momentumState](Config{Warmup: window + 1, Window: window + 1},
		func(_ *momentumState, v types.TimedValue, n *Node[momentumState]) float64 {
			w := n.Window()
			if w.Count() < window+1 {
				return math.NaN()
			}
			return v.Value - w.Snapshot()[0]
		})
	Bind(source, n)
	return &MomentumStream{n}
}

type rocState struct{}

// ROCStream is the rate of change, (x/x[window] - 1) * 100.
type ROCStream struct {
	*Node[rocState]
}

func ROC(source types.TickSource, window int) *ROCStream {
	requirePeriod("ROC", window)
	n := NewNode[rocState](Config{Warmup: window + 1, Window: window + 1},
		func(_ *rocState, v types.TimedValue, n *Node[rocState]) float64 {
			w := n.Window()
			if w.Count() < window+1 {
				return math.NaN()
			}
			base := w.Snapshot()[0]
			if base == 0 || math.IsNaN(base) {
				return math.NaN()
			}
			return (v.Value/base - 1) * 100
		})
	Bind(source, n)
	return &ROCStream{n}
}
