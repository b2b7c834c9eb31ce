package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestMeanAbsDev(t *testing.T) {
	prices := types.NewTickStream("prices")
	mad := MeanAbsDev(prices, 3)

	feed(prices, 1, 2, 3)
	// mean 2, deviations [1 0 1]
	assert.InDelta(t, 2.0/3.0, mad.Last(0), 1e-9)
}
