package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type zscoreState struct{}

// ZScoreStream is (x - mean) / stddev over the rolling window, using the
// population deviation.
type ZScoreStream struct {
	*Node[zscoreState]
}

func ZScore(source types.TickSource, window int) *ZScoreStream {
	requirePeriod("ZScore", window)
	n := NewNode[zscoreState](Config{Warmup: window, Window: window},
		func(_ *zscoreState, v types.TimedValue, n *Node[zscoreState]) float64 {
			w := n.Window()
			std := math.Sqrt(windowVariance(w, 0))
			if math.IsNaN(std) || std == 0 {
				return math.NaN()
			}
			return (v.Value - w.Average()) / std
		})
	Bind(source, n)
	return &ZScoreStream{n}
}
