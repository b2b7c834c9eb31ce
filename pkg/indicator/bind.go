package indicator

import (
	"time"

	"github.com/tickflow-io/tickflow/pkg/types"
)

// Bind subscribes the node to its source. This is the construction-time
// composition edge: a freshly built node has no subscribers of its own, so
// the edge cannot form a cycle and a failure here means the caller wired an
// already-connected node, which is a construction bug.
func Bind[S any](source types.TickSource, n *Node[S]) {
	if err := source.Subscribe(n); err != nil {
		panic(err)
	}
}

// BindPair wires a two-input node to its labeled sources. The node update
// fires once both sources have reported the same timestamp; the first pair
// for a timestamp commits the slot and every later pair for it is a
// revision, so per-source revisions of the open slot recompute the node
// without compounding.
func BindPair[S any](actual, predicted types.TickSource, n *Node[S]) {
	var a, p types.TimedValue
	var haveA, haveP bool
	var lastFired time.Time
	var fired bool

	fire := func() {
		if !haveA || !haveP || !a.Time.Equal(p.Time) {
			return
		}
		isNew := !(fired && lastFired.Equal(a.Time))
		n.UpdatePair(types.TimedValue{Time: a.Time, Value: a.Value, IsNew: isNew}, p)
		fired = true
		lastFired = a.Time
	}

	actual.OnTick(func(v types.TimedValue) {
		a = v
		haveA = true
		fire()
	})
	predicted.OnTick(func(v types.TimedValue) {
		p = v
		haveP = true
		fire()
	})
}
