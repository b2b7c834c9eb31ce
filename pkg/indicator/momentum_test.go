package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestMomentum(t *testing.T) {
	prices := types.NewTickStream("prices")
	mom := Momentum(prices, 2)

	prices.Push(types.NewTick(at(0), 1))
	assert.True(t, math.IsNaN(mom.Last(0)))
	prices.Push(types.NewTick(at(1), 2))
	assert.True(t, math.IsNaN(mom.Last(0)))

	prices.Push(types.NewTick(at(2), 4))
	assert.InDelta(t, 3.0, mom.Last(0), 1e-9)
	assert.True(t, mom.Hot())
}

func TestROC(t *testing.T) {
	prices := types.NewTickStream("prices")
	roc := ROC(prices, 2)

	feed(prices, 1, 2, 4)
	assert.InDelta(t, 300.0, roc.Last(0), 1e-9)

	// a zero base has no defined rate of change
	zeros := types.NewTickStream("zeros")
	roc2 := ROC(zeros, 1)
	feed(zeros, 0, 5)
	assert.True(t, math.IsNaN(roc2.Last(0)))
}
