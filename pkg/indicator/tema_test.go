package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestTEMA(t *testing.T) {
	prices := types.NewTickStream("prices")
	tema := TEMA(prices, 2)

	feed(prices, 1, 2, 3, 4)
	// ema1 = 3.5, ema2 = 3.0277.., ema3 = 2.6064..
	assert.InDelta(t, 4.0231481, tema.Last(0), 1e-6)
	assert.Equal(t, 4, tema.Length())
	assert.True(t, tema.Hot())
}
