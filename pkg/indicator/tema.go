package indicator

import (
	"github.com/tickflow-io/tickflow/pkg/types"
)

type temaState struct{}

// TEMAStream is the triple exponential moving average,
// 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)).
type TEMAStream struct {
	*Node[temaState]
}

func TEMA(source types.TickSource, window int) *TEMAStream {
	requirePeriod("TEMA", window)
	ema1 := EMA(source, window)
	ema2 := EMA(ema1, window)
	ema3 := EMA(ema2, window)

	n := NewNode[temaState](Config{Warmup: window},
		func(_ *temaState, v types.TimedValue, _ *Node[temaState]) float64 {
			return 3*ema1.Last(0) - 3*ema2.Last(0) + v.Value
		})
	Bind(ema3, n)

	return &TEMAStream{n}
}
