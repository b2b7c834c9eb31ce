package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type cmaState struct {
	count int
	sum   float64
}

// CMAStream is the cumulative mean of every committed sample seen. NaN
// samples are skipped.
type CMAStream struct {
	*Node[cmaState]
}

func CMA(source types.TickSource) *CMAStream {
	n := NewNode[cmaState](Config{Warmup: 1},
		func(st *cmaState, v types.TimedValue, _ *Node[cmaState]) float64 {
			if !math.IsNaN(v.Value) {
				st.count++
				st.sum += v.Value
			}
			if st.count == 0 {
				return math.NaN()
			}
			return st.sum / float64(st.count)
		})
	Bind(source, n)
	return &CMAStream{n}
}
