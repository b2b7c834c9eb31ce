package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type rsiState struct {
	prev     float64
	hasPrev  bool
	count    int
	gainSum  float64
	lossSum  float64
	avgGain  float64
	avgLoss  float64
	smoothed bool
}

// RSIStream is Wilder's relative strength index: simple averages of gains
// and losses over the first window changes, smoothed recursively afterwards.
// NaN samples leave the accumulators untouched and emit NaN.
type RSIStream struct {
	*Node[rsiState]
}

func RSI(source types.TickSource, window int) *RSIStream {
	requirePeriod("RSI", window)
	lambda := 1.0 / float64(window)

	n := NewNode[rsiState](Config{Warmup: window + 1},
		func(st *rsiState, v types.TimedValue, _ *Node[rsiState]) float64 {
			x := v.Value
			if math.IsNaN(x) {
				return math.NaN()
			}
			if !st.hasPrev {
				st.prev = x
				st.hasPrev = true
				return math.NaN()
			}

			change := x - st.prev
			st.prev = x
			gain, loss := 0.0, 0.0
			if change >= 0 {
				gain = change
			} else {
				loss = -change
			}

			if !st.smoothed {
				st.count++
				st.gainSum += gain
				st.lossSum += loss
				if st.count < window {
					return math.NaN()
				}
				st.avgGain = st.gainSum / float64(window)
				st.avgLoss = st.lossSum / float64(window)
				st.smoothed = true
			} else {
				st.avgGain = st.avgGain*(1-lambda) + gain*lambda
				st.avgLoss = st.avgLoss*(1-lambda) + loss*lambda
			}

			if st.avgLoss == 0 {
				return 100
			}
			rs := st.avgGain / st.avgLoss
			return 100 - 100/(1+rs)
		})
	Bind(source, n)
	return &RSIStream{n}
}
