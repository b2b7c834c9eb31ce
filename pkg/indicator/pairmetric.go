package indicator

import (
	"math"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type pairMetricState struct{}

// newPairMetric builds a two-input error metric node: term maps one
// (actual, predicted) pair to the windowed quantity and finish reduces the
// window to the emitted value. A NaN predicted channel falls back to the
// rolling mean of the actual channel, held in the aux window.
func newPairMetric(
	name string,
	actual, predicted types.TickSource,
	window int,
	term func(a, p float64) float64,
	finish func(w *types.RollingWindow) float64,
) *Node[pairMetricState] {
	requirePeriod(name, window)

	n := NewNode[pairMetricState](Config{Warmup: window, Window: window, AuxWindow: window, SelfFeed: true},
		func(_ *pairMetricState, v types.TimedValue, n *Node[pairMetricState]) float64 {
			pair, _ := n.Pair()
			n.AuxWindow().Add(v.Value, v.IsNew)
			p := nanFallback(pair.Value, n.AuxWindow().Average())
			n.Window().Add(term(v.Value, p), v.IsNew)
			return finish(n.Window())
		})
	BindPair(actual, predicted, n)
	return n
}

// MSEStream is the mean squared error between the two channels.
type MSEStream struct {
	*Node[pairMetricState]
}

func MSE(actual, predicted types.TickSource, window int) *MSEStream {
	n := newPairMetric("MSE", actual, predicted, window,
		func(a, p float64) float64 { e := a - p; return e * e },
		func(w *types.RollingWindow) float64 { return w.Average() })
	return &MSEStream{n}
}

// RMSEStream is the root mean squared error between the two channels.
type RMSEStream struct {
	*Node[pairMetricState]
}

func RMSE(actual, predicted types.TickSource, window int) *RMSEStream {
	n := newPairMetric("RMSE", actual, predicted, window,
		func(a, p float64) float64 { e := a - p; return e * e },
		func(w *types.RollingWindow) float64 { return math.Sqrt(w.Average()) })
	return &RMSEStream{n}
}

// MAEStream is the mean absolute error between the two channels.
type MAEStream struct {
	*Node[pairMetricState]
}

func MAE(actual, predicted types.TickSource, window int) *MAEStream {
	n := newPairMetric("MAE", actual, predicted, window,
		func(a, p float64) float64 { return math.Abs(a - p) },
		func(w *types.RollingWindow) float64 { return w.Average() })
	return &MAEStream{n}
}

// MAPEStream is the mean absolute percentage error between the two
// channels. A zero actual makes the slot NaN, which poisons the window
// until the slot is evicted.
type MAPEStream struct {
	*Node[pairMetricState]
}

func MAPE(actual, predicted types.TickSource, window int) *MAPEStream {
	n := newPairMetric("MAPE", actual, predicted, window,
		func(a, p float64) float64 {
			if a == 0 {
				return math.NaN()
			}
			return math.Abs((a-p)/a) * 100
		},
		func(w *types.RollingWindow) float64 { return w.Average() })
	return &MAPEStream{n}
}
