package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestMedian(t *testing.T) {
	prices := types.NewTickStream("prices")
	med := Median(prices, 7)

	feed(prices, 1, 3, 3, 6, 7, 8, 9)
	assert.InDelta(t, 6.0, med.Last(0), 1e-9)
}

func TestMedianSlidingWindow(t *testing.T) {
	prices := types.NewTickStream("prices")
	med := Median(prices, 4)

	feed(prices, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	// window [6 7 8 9]
	assert.InDelta(t, 7.5, med.Last(0), 1e-9)
	assert.InDelta(t, 6.5, med.Last(1), 1e-9)
}

func TestMedianAbsDev(t *testing.T) {
	prices := types.NewTickStream("prices")
	mad := MedianAbsDev(prices, 3)

	feed(prices, 1, 2, 3)
	// deviations from the median 2 are [1 0 1]
	assert.InDelta(t, 1.0, mad.Last(0), 1e-9)
}
