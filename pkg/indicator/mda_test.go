package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tickflow-io/tickflow/pkg/types"
)

func TestMDA(t *testing.T) {
	actual := types.NewTickStream("actual")
	predicted := types.NewTickStream("predicted")
	mda := MDA(actual, predicted, 2)

	// the first pair only seeds the previous actual
	pushPair(actual, predicted, 0, 1, 1)
	assert.True(t, math.IsNaN(mda.Last(0)))

	// both moved up from 1: a hit
	pushPair(actual, predicted, 1, 2, 1.5)
	assert.InDelta(t, 1.0, mda.Last(0), 1e-9)

	// actual moved down from 2, prediction called up: a miss
	pushPair(actual, predicted, 2, 1, 3)
	assert.InDelta(t, 0.5, mda.Last(0), 1e-9)
}

func TestMDANaNPredictionCallsNoChange(t *testing.T) {
	actual := types.NewTickStream("actual")
	predicted := types.NewTickStream("predicted")
	mda := MDA(actual, predicted, 2)

	pushPair(actual, predicted, 0, 1, 1)
	// no-change call against an upward move: a miss
	pushPair(actual, predicted, 1, 2, math.NaN())
	assert.InDelta(t, 0.0, mda.Last(0), 1e-9)
}
