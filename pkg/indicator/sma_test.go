package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestSMA(t *testing.T) {
	prices := types.NewTickStream("prices")
	sma := SMA(prices, 9)

	feed(prices, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.InDelta(t, 5.0, sma.Last(0), 1e-9)
	assert.InDelta(t, 4.5, sma.Last(1), 1e-9)
	assert.True(t, sma.Hot())

	// the window slides on the next commit
	prices.Push(types.NewTick(at(9), 10))
	assert.InDelta(t, 6.0, sma.Last(0), 1e-9)
}

func TestSMARevision(t *testing.T) {
	prices := types.NewTickStream("prices")
	sma := SMA(prices, 3)

	feed(prices, 1, 2, 3)
	assert.InDelta(t, 2.0, sma.Last(0), 1e-9)

	prices.Push(types.RevisedTick(at(2), 6))
	assert.InDelta(t, 3.0, sma.Last(0), 1e-9)
	assert.Equal(t, 3, sma.Length())

	prices.Push(types.RevisedTick(at(2), 9))
	assert.InDelta(t, 4.0, sma.Last(0), 1e-9)
	assert.Equal(t, 3, sma.Length())
}
