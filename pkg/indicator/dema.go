package indicator

import (
	"github.com/tickflow-io/tickflow/pkg/types"
)

type demaState struct{}

// DEMAStream is the double exponential moving average, 2*EMA - EMA(EMA).
type DEMAStream struct {
	*Node[demaState]

	EMA1 *EMAStream
	EMA2 *EMAStream
}

func DEMA(source types.TickSource, window int) *DEMAStream {
	requirePeriod("DEMA", window)
	ema1 := EMA(source, window)
	ema2 := EMA(ema1, window)

	// bound to the tail of the chain: by the time ema2 emits a slot, ema1
	// has already processed the same slot.
	n := NewNode[demaState](Config{Warmup: window},
		func(_ *demaState, v types.TimedValue, _ *Node[demaState]) float64 {
			return 2*ema1.Last(0) - v.Value
		})
	Bind(ema2, n)

	return &DEMAStream{Node: n, EMA1: ema1, EMA2: ema2}
}
