package indicator

import (
	"github.com/tickflow-io/tickflow/pkg/types"
)

type sumState struct{}

// SumStream is the rolling sum over the window.
type SumStream struct {
	*Node[sumState]
}

func Sum(source types.TickSource, window int) *SumStream {
	requirePeriod("Sum", window)
	n := NewNode[sumState](Config{Warmup: window, Window: window},
		func(_ *sumState, _ types.TimedValue, n *Node[sumState]) float64 {
			return n.Window().Sum()
		})
	Bind(source, n)
	return &SumStream{n}
}
