package indicator

import (
	"github.com/tickflow-io/tickflow/pkg/types"
)

// TRIMAStream is the triangular moving average: an SMA of an SMA with the
// window split so the weights form a triangle.
type TRIMAStream struct {
	*SMAStream
}

func TRIMA(source types.TickSource, window int) *TRIMAStream {
	requirePeriod("TRIMA", window)
	first := (window + 1) / 2
	second := window/2 + 1
	inner := SMA(source, first)
	outer := SMA(inner, second)
	return &TRIMAStream{outer}
}
