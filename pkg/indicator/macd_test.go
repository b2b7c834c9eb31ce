package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestMACD(t *testing.T) {
	prices := types.NewTickStream("prices")
	macd := MACD(prices, 2, 4, 2)

	feed(prices, 1, 2, 3, 4, 5)

	// fast EMA(2) = 4.5, slow EMA(4) = 3.5
	assert.InDelta(t, 1.0, macd.Last(0), 1e-9)
	assert.InDelta(t, 25.0/27.0, macd.Signal.Last(0), 1e-9)
	assert.InDelta(t, 2.0/27.0, macd.Histogram.Last(0), 1e-9)

	// the three series stay in lockstep
	assert.Equal(t, macd.Length(), macd.Signal.Length())
	assert.Equal(t, macd.Length(), macd.Histogram.Length())
}

func TestMACDWindowOrdering(t *testing.T) {
	prices := types.NewTickStream("prices")
	assert.Panics(t, func() { MACD(prices, 4, 2, 2) })
	assert.Panics(t, func() { MACD(prices, 2, 2, 2) })
}
