package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestExtremes(t *testing.T) {
	prices := types.NewTickStream("prices")
	mn := MinVal(prices, 3)
	mx := MaxVal(prices, 3)
	rng := RangeVal(prices, 3)

	feed(prices, 1, 2, 3)
	assert.InDelta(t, 1.0, mn.Last(0), 1e-9)
	assert.InDelta(t, 3.0, mx.Last(0), 1e-9)
	assert.InDelta(t, 2.0, rng.Last(0), 1e-9)

	// the oldest slot falls out of the window
	prices.Push(types.NewTick(at(3), 4))
	assert.InDelta(t, 2.0, mn.Last(0), 1e-9)
	assert.InDelta(t, 4.0, mx.Last(0), 1e-9)
	assert.InDelta(t, 2.0, rng.Last(0), 1e-9)
}

func TestExtremesRevision(t *testing.T) {
	prices := types.NewTickStream("prices")
	mx := MaxVal(prices, 3)

	feed(prices, 1, 5, 2)
	assert.InDelta(t, 5.0, mx.Last(0), 1e-9)

	// revising the open slot above the held maximum moves it
	prices.Push(types.RevisedTick(at(2), 9))
	assert.InDelta(t, 9.0, mx.Last(0), 1e-9)
	prices.Push(types.RevisedTick(at(2), 2))
	assert.InDelta(t, 5.0, mx.Last(0), 1e-9)
}
