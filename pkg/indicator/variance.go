package indicator

import (
	"fmt"
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type varianceState struct{}

// VarianceStream is the variance over the rolling window. ddof selects the
// estimator: 0 for population, 1 for the unbiased sample variance.
type VarianceStream struct {
	*Node[varianceState]
}

func Variance(source types.TickSource, window int, ddof int) *VarianceStream {
	requirePeriod("Variance", window)
	if ddof != 0 && ddof != 1 {
		panic(fmt.Sprintf("Variance: ddof must be 0 or 1, got %d", ddof))
	}

	n := NewNode[varianceState](Config{Warmup: window, Window: window},
		func(_ *varianceState, _ types.TimedValue, n *Node[varianceState]) float64 {
			return windowVariance(n.Window(), ddof)
		})
	Bind(source, n)
	return &VarianceStream{n}
}

// windowVariance computes the variance of the currently held slots with the
// given delta degrees of freedom, NaN when fewer than ddof+1 slots are held
// or a NaN slot poisons the window.
func windowVariance(w *types.RollingWindow, ddof int) float64 {
	count := w.Count()
	if count <= ddof || w.HasNaN() {
		return math.NaN()
	}
	mean := w.Average()
	s := 0.0
	for _, v := range w.Snapshot() {
		diff := v - mean
		s += diff * diff
	}
	return s / float64(count-ddof)
}

type stddevState struct{}

// StdDevStream is the standard deviation over the rolling window.
type StdDevStream struct {
	*Node[stddevState]
}

func StdDev(source types.TickSource, window int, ddof int) *StdDevStream {
	requirePeriod("StdDev", window)
	if ddof != 0 && ddof != 1 {
		panic(fmt.Sprintf("StdDev: ddof must be 0 or 1, got %d", ddof))
	}

	n := NewNode[stddevState](Config{Warmup: window, Window: window},
		func(_ *stddevState, _ types.TimedValue, n *Node[stddevState]) float64 {
			return math.Sqrt(windowVariance(n.Window(), ddof))
		})
	Bind(source, n)
	return &StdDevStream{n}
}
