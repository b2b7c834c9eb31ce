package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type linregState struct {
	alpha, beta float64
}

// LinRegStream fits an ordinary least squares line over the rolling window
// and emits the one-step-ahead forecast. The fitted coefficients are
// queryable between updates.
type LinRegStream struct {
	*Node[linregState]
}

func LinReg(source types.TickSource, window int) *LinRegStream {
	requirePeriod("LinReg", window)
	n := NewNode[linregState](Config{Warmup: window, Window: window},
		func(st *linregState, _ types.TimedValue, n *Node[linregState]) float64 {
			w := n.Window()
			if w.Count() < 2 || w.HasNaN() {
				return math.NaN()
			}

			y := w.Snapshot()
			x := make([]float64, len(y))
			for i := range x {
				x[i] = float64(i)
			}
			st.alpha, st.beta = stat.LinearRegression(x, y, nil, false)
			return st.alpha + st.beta*float64(len(y))
		})
	Bind(source, n)
	return &LinRegStream{n}
}

// Slope is the fitted slope per slot.
func (s *LinRegStream) Slope() float64 {
	return s.State().beta
}

// Intercept is the fitted value at the oldest held slot.
func (s *LinRegStream) Intercept() float64 {
	return s.State().alpha
}
