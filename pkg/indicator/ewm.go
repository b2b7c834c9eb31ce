package indicator

import (
	"fmt"
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type ewmState struct {
	prev   float64
	primed bool
}

// EWMStream is an exponentially weighted mean with a caller-supplied decay
// factor alpha in (0, 1]. The first sample seeds the mean directly.
type EWMStream struct {
	*Node[ewmState]
}

func EWM(source types.TickSource, alpha float64) *EWMStream {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		panic(fmt.Sprintf("EWM: decay factor must be in (0, 1], got %v", alpha))
	}

	n := NewNode[ewmState](Config{Warmup: 1},
		func(st *ewmState, v types.TimedValue, n *Node[ewmState]) float64 {
			x := nanFallback(v.Value, n.LastValid())
			if math.IsNaN(x) {
				return math.NaN()
			}

			if !st.primed {
				st.prev = x
				st.primed = true
				return st.prev
			}

			st.prev = alpha*x + (1-alpha)*st.prev
			return st.prev
		})
	Bind(source, n)
	return &EWMStream{n}
}
