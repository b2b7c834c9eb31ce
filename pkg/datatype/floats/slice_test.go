package floats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceLast(t *testing.T) {
	s := Slice{1, 2, 3}
	assert.Equal(t, 3.0, s.Last(0))
	assert.Equal(t, 2.0, s.Last(1))
	assert.Equal(t, 0.0, s.Last(5))
}

func TestSliceTruncate(t *testing.T) {
	s := Slice{1, 2, 3, 4, 5}
	s = s.Truncate(3)
	assert.Equal(t, Slice{3, 4, 5}, s)

	s = s.Truncate(10)
	assert.Equal(t, Slice{3, 4, 5}, s)
}

func TestSliceAggregates(t *testing.T) {
	s := Slice{2, 4, 6}
	assert.Equal(t, 12.0, s.Sum())
	assert.Equal(t, 4.0, s.Mean())
	assert.Equal(t, 6.0, s.Max())
	assert.Equal(t, 2.0, s.Min())
}
