package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestDEMA(t *testing.T) {
	prices := types.NewTickStream("prices")
	dema := DEMA(prices, 2)

	feed(prices, 1, 2, 3)
	// ema1: 1, 1.5, 2.5; ema2: 1, 1.25, 2.0833..; dema = 2*2.5 - 2.0833..
	assert.InDelta(t, 2.5, dema.EMA1.Last(0), 1e-9)
	assert.InDelta(t, 2.0833333, dema.EMA2.Last(0), 1e-6)
	assert.InDelta(t, 2.9166667, dema.Last(0), 1e-6)
	assert.Equal(t, 3, dema.Length())
}
