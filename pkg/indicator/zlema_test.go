package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestZLEMA(t *testing.T) {
	prices := types.NewTickStream("prices")
	zlema := ZLEMA(prices, 3)

	// lag 1: on a ramp the de-lagged input x + (x - x[1]) lands one step
	// ahead and the smoothing cancels the lag entirely
	feed(prices, 1, 2, 3)
	assert.InDelta(t, 1.0, zlema.Last(2), 1e-9)
	assert.InDelta(t, 2.0, zlema.Last(1), 1e-9)
	assert.InDelta(t, 3.0, zlema.Last(0), 1e-9)
}
