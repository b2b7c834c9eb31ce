package indicator

import (
	"fmt"

	"github.com/tickflow-io/tickflow/pkg/types"
)

// MACDStream is the fast-EMA minus slow-EMA line together with its signal
// EMA and histogram, wired as a small computation graph:
//
//	source -> fastEMA --\
//	source -> slowEMA ---> macd -> signal
//	                       macd - signal -> histogram
type MACDStream struct {
	*CombineStream

	Signal    *EMAStream
	Histogram *CombineStream
}

func MACD(source types.TickSource, fastWindow, slowWindow, signalWindow int) *MACDStream {
	requirePeriod("MACD", fastWindow)
	requirePeriod("MACD", slowWindow)
	requirePeriod("MACD", signalWindow)
	if fastWindow >= slowWindow {
		panic(fmt.Sprintf("MACD: fast window must be shorter than slow window, got %d/%d", fastWindow, slowWindow))
	}

	fast := EMA(source, fastWindow)
	slow := EMA(source, slowWindow)
	macd := Subtract(fast, slow)
	signal := EMA(macd, signalWindow)
	histogram := Subtract(macd, signal)

	return &MACDStream{
		CombineStream: macd,
		Signal:        signal,
		Histogram:     histogram,
	}
}
