package indicator

import (
	"github.com/tickflow-io/tickflow/pkg/types"
)

type combineState struct{}

// CombineStream applies an element-wise binary function to two sources,
// pairing their emissions by timestamp.
type CombineStream struct {
	*Node[combineState]
}

func Combine(a, b types.TickSource, f func(x, y float64) float64) *CombineStream {
	n := NewNode[combineState](Config{Warmup: 1},
		func(_ *combineState, v types.TimedValue, n *Node[combineState]) float64 {
			pair, _ := n.Pair()
			return f(v.Value, pair.Value)
		})
	BindPair(a, b, n)
	return &CombineStream{n}
}

// Add emits a[i] + b[i].
func Add(a, b types.TickSource) *CombineStream {
	return Combine(a, b, func(x, y float64) float64 { return x + y })
}

// Subtract emits a[i] - b[i].
func Subtract(a, b types.TickSource) *CombineStream {
	return Combine(a, b, func(x, y float64) float64 { return x - y })
}

// Multiply emits a[i] * b[i].
func Multiply(a, b types.TickSource) *CombineStream {
	return Combine(a, b, func(x, y float64) float64 { return x * y })
}
