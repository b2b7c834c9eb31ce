package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

// HullStream is the Hull moving average:
// WMA(2*WMA(window/2) - WMA(window), sqrt(window)).
type HullStream struct {
	*WMAStream
}

func Hull(source types.TickSource, window int) *HullStream {
	requirePeriod("Hull", window)
	half := WMA(source, intmax(window/2, 1))
	full := WMA(source, window)
	diff := Combine(half, full, func(x, y float64) float64 { return 2*x - y })
	smooth := WMA(diff, intmax(int(math.Round(math.Sqrt(float64(window)))), 1))
	return &HullStream{smooth}
}

func intmax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
