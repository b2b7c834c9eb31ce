package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type correlationState struct{}

// CorrelationStream is the rolling Pearson correlation between two sources
// paired by timestamp.
type CorrelationStream struct {
	*Node[correlationState]
}

func Correlation(a, b types.TickSource, window int) *CorrelationStream {
	requirePeriod("Correlation", window)
	n := NewNode[correlationState](Config{Warmup: window, Window: window, AuxWindow: window, SelfFeed: true},
		func(_ *correlationState, v types.TimedValue, n *Node[correlationState]) float64 {
			pair, _ := n.Pair()
			n.Window().Add(v.Value, v.IsNew)
			n.AuxWindow().Add(pair.Value, v.IsNew)

			if n.Window().Count() < 2 || n.Window().HasNaN() || n.AuxWindow().HasNaN() {
				return math.NaN()
			}
			return stat.Correlation(n.Window().Snapshot(), n.AuxWindow().Snapshot(), nil)
		})
	BindPair(a, b, n)
	return &CorrelationStream{n}
}
