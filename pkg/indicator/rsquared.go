package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type rsquaredState struct{}

// RSquaredStream is the coefficient of determination of the predicted
// channel against the actual channel over the rolling window:
// 1 - SSE/SST.
type RSquaredStream struct {
	*Node[rsquaredState]
}

func RSquared(actual, predicted types.TickSource, window int) *RSquaredStream {
	requirePeriod("RSquared", window)
	n := NewNode[rsquaredState](Config{Warmup: window, Window: window, AuxWindow: window, SelfFeed: true},
		func(_ *rsquaredState, v types.TimedValue, n *Node[rsquaredState]) float64 {
			pair, _ := n.Pair()
			aux := n.AuxWindow()
			aux.Add(v.Value, v.IsNew)
			p := nanFallback(pair.Value, aux.Average())
			e := v.Value - p
			n.Window().Add(e*e, v.IsNew)

			if aux.Count() < 2 || aux.HasNaN() || n.Window().HasNaN() {
				return math.NaN()
			}

			mean := aux.Average()
			sst := 0.0
			for _, a := range aux.Snapshot() {
				diff := a - mean
				sst += diff * diff
			}
			if sst == 0 {
				return math.NaN()
			}
			return 1 - n.Window().Sum()/sst
		})
	BindPair(actual, predicted, n)
	return &RSquaredStream{n}
}
