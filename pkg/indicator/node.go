package indicator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/tickflow-io/tickflow/pkg/types"
)

// Formula is the pluggable computation of a node. It may mutate the
// accumulator state st (the engine snapshots and restores it around
// tentative revisions) and read the node's windows and query surface, but it
// must not read anything outside the node: the commit/revise protocol is
// only correct for pure functions of node-local state.
type Formula[S any] func(st *S, v types.TimedValue, n *Node[S]) float64

// Config describes the engine resources a node owns. State accumulators
// live in the type parameter of the node instead.
type Config struct {
	// Warmup is the committed-sample count after which the node is hot.
	Warmup int

	// Window is the capacity of the primary rolling window, 0 for none.
	Window int

	// AuxWindow is the capacity of the secondary rolling window used by
	// two-input nodes, 0 for none.
	AuxWindow int

	// SelfFeed skips the automatic window feed so the formula can push
	// derived values instead of the raw input. A self-feeding formula must
	// call Add exactly once per window per update, passing the input's
	// IsNew flag through.
	SelfFeed bool
}

// Node is the stateful engine every indicator plugs a formula into. It owns
// the commit/revise lifecycle: a committed sample advances the index and
// snapshots the accumulators first, so any number of tentative revisions of
// the still-open slot can be recomputed from that baseline without
// compounding.
//
// Nodes are single-threaded: an Update runs the whole downstream graph to
// completion before returning, and concurrent callers must serialize
// externally.
type Node[S any] struct {
	*types.TickSeries

	warmup int
	index  int
	hot    bool

	lastValid float64
	primed    bool

	window    *types.RollingWindow
	auxWindow *types.RollingWindow
	selfFeed  bool

	state  S
	shadow S

	formula Formula[S]

	pairValue types.TimedValue
	pairSet   bool
}

// NewNode builds a node from its engine config and formula. Invalid periods
// are construction bugs and panic.
func NewNode[S any](cfg Config, formula Formula[S]) *Node[S] {
	if cfg.Warmup < 1 {
		panic(fmt.Sprintf("indicator: warmup period must be >= 1, got %d", cfg.Warmup))
	}
	if cfg.Window < 0 || cfg.AuxWindow < 0 {
		panic(fmt.Sprintf("indicator: window capacity must be >= 0, got %d/%d", cfg.Window, cfg.AuxWindow))
	}
	if formula == nil {
		panic("indicator: formula must not be nil")
	}

	n := &Node[S]{
		TickSeries: types.NewTickSeries(),
		warmup:     cfg.Warmup,
		selfFeed:   cfg.SelfFeed,
		lastValid:  math.NaN(),
		formula:    formula,
	}
	if cfg.Window > 0 {
		n.window = types.NewRollingWindow(cfg.Window)
	}
	if cfg.AuxWindow > 0 {
		n.auxWindow = types.NewRollingWindow(cfg.AuxWindow)
	}
	return n
}

// Update is the sole entry point. Committed samples advance the index,
// refresh the last valid value and snapshot the accumulators before the
// formula applies the sample; revisions restore the snapshot first, so each
// revision computes as if it were the first. The result is recorded and
// re-emitted with the input's time and IsNew flag.
//
// A revision arriving before any committed sample is a feed protocol
// violation: it is ignored with a warning and NaN is returned.
func (n *Node[S]) Update(v types.TimedValue) float64 {
	if v.IsNew {
		n.index++
		if !math.IsNaN(v.Value) {
			n.lastValid = v.Value
		}
		n.shadow = n.state
		n.primed = true
	} else {
		if !n.primed {
			log.Warnf("indicator: revision received before any committed sample, ignoring")
			return math.NaN()
		}
		n.state = n.shadow
	}

	if !n.selfFeed && n.window != nil {
		n.window.Add(v.Value, v.IsNew)
	}

	out := n.formula(&n.state, v, n)

	n.hot = n.index >= n.warmup

	n.RecordAndEmit(types.TimedValue{Time: v.Time, Value: out, IsNew: v.IsNew})
	return out
}

// UpdatePair is the entry point for two-input nodes: predicted is stored as
// the second labeled channel and actual drives the regular lifecycle.
func (n *Node[S]) UpdatePair(actual, predicted types.TimedValue) float64 {
	n.pairValue = predicted
	n.pairSet = true
	return n.Update(actual)
}

// Init resets the node to cold with empty history. It is safe to call at
// any time.
func (n *Node[S]) Init() {
	var zero S
	n.state = zero
	n.shadow = zero
	n.index = 0
	n.hot = false
	n.primed = false
	n.lastValid = math.NaN()
	n.pairValue = types.TimedValue{}
	n.pairSet = false
	if n.window != nil {
		n.window.Clear()
	}
	if n.auxWindow != nil {
		n.auxWindow.Clear()
	}
	n.TickSeries.Reset()
}

// Hot reports whether the warmup period has been satisfied. It never
// reverts once reached.
func (n *Node[S]) Hot() bool {
	return n.hot
}

// CommitCount is the count of committed samples seen. It is not named Index
// so the positional Series accessor stays promoted from the embedded series.
func (n *Node[S]) CommitCount() int {
	return n.index
}

// LastValid is the most recent non-NaN committed input, NaN before the
// first one.
func (n *Node[S]) LastValid() float64 {
	return n.lastValid
}

func (n *Node[S]) WarmupPeriod() int {
	return n.warmup
}

// Window returns the primary rolling window, nil when the node owns none.
func (n *Node[S]) Window() *types.RollingWindow {
	return n.window
}

// AuxWindow returns the secondary rolling window, nil when the node owns
// none.
func (n *Node[S]) AuxWindow() *types.RollingWindow {
	return n.auxWindow
}

// Pair returns the current second-channel sample of a two-input node.
func (n *Node[S]) Pair() (types.TimedValue, bool) {
	return n.pairValue, n.pairSet
}

// State returns a copy of the live accumulators, for read-only inspection.
func (n *Node[S]) State() S {
	return n.state
}
