package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type smaState struct{}

// SMAStream is the arithmetic mean over the rolling window. While the
// window is still filling, the mean covers the samples held so far.
type SMAStream struct {
	*Node[smaState]
}

func SMA(source types.TickSource, window int) *SMAStream {
	requirePeriod("SMA", window)
	n := NewNode[smaState](Config{Warmup: window, Window: window},
		func(_ *smaState, _ types.TimedValue, n *Node[smaState]) float64 {
			return n.Window().Average()
		})
	Bind(source, n)
	return &SMAStream{n}
}

func requirePeriod(name string, window int) {
	if window < 1 {
		panic(name + ": window must be a positive integer")
	}
}

// nanFallback substitutes fallback when v is NaN.
func nanFallback(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return v
}
