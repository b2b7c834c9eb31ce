package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingNode struct {
	*TickSeries

	got []TimedValue
}

func newRecordingNode() *recordingNode {
	return &recordingNode{TickSeries: NewTickSeries()}
}

func (r *recordingNode) Update(v TimedValue) float64 {
	r.got = append(r.got, v)
	r.RecordAndEmit(v)
	return v.Value
}

func tickAt(i int, v float64) TimedValue {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return NewTick(base.Add(time.Duration(i)*time.Minute), v)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	s := NewTickStream("test")
	n := newRecordingNode()

	assert.NoError(t, s.Subscribe(n))
	assert.NoError(t, s.Subscribe(n))
	assert.Len(t, s.Subscribers(), 1)

	s.Push(tickAt(0, 1))
	assert.Len(t, n.got, 1)
}

func TestUnsubscribe(t *testing.T) {
	s := NewTickStream("test")
	a := newRecordingNode()
	b := newRecordingNode()

	assert.NoError(t, s.Subscribe(a))
	s.Unsubscribe(b) // not a subscriber, no-op
	assert.Len(t, s.Subscribers(), 1)

	s.Unsubscribe(a)
	assert.Empty(t, s.Subscribers())
	s.Push(tickAt(0, 1))
	assert.Empty(t, a.got)
}

func TestSubscribeRejectsCycles(t *testing.T) {
	a := newRecordingNode()
	b := newRecordingNode()
	c := newRecordingNode()

	assert.NoError(t, a.Subscribe(b))
	assert.NoError(t, b.Subscribe(c))

	err := c.Subscribe(a)
	assert.ErrorIs(t, err, ErrCyclicSubscription)

	err = a.Subscribe(a)
	assert.ErrorIs(t, err, ErrCyclicSubscription)

	// the rejected edges must not have been added
	assert.Empty(t, c.Subscribers())
	assert.Len(t, a.Subscribers(), 1)
}

func TestEmitTickDepthFirst(t *testing.T) {
	s := NewTickStream("test")
	a := newRecordingNode()
	b := newRecordingNode()

	assert.NoError(t, s.Subscribe(a))
	assert.NoError(t, a.Subscribe(b))

	var order []string
	s.OnTick(func(TimedValue) { order = append(order, "s") })
	a.OnTick(func(TimedValue) { order = append(order, "a") })
	b.OnTick(func(TimedValue) { order = append(order, "b") })

	s.Push(tickAt(0, 1))

	// the subgraph below a finishes before s serves its own listeners
	assert.Equal(t, []string{"b", "a", "s"}, order)
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestPushDropsOutOfOrderSamples(t *testing.T) {
	s := NewTickStream("test")
	s.Push(tickAt(1, 10))
	s.Push(tickAt(0, 20)) // older than the last accepted sample
	assert.Equal(t, 1, s.Length())
	assert.Equal(t, 10.0, s.Last(0))

	// same timestamp is fine, that is how revisions arrive
	s.Push(RevisedTick(tickAt(1, 0).Time, 30))
	assert.Equal(t, 1, s.Length())
	assert.Equal(t, 30.0, s.Last(0))
}

func TestRecordRevisionOverwritesNewestSlot(t *testing.T) {
	s := NewTickSeries()
	s.Record(1, true)
	s.Record(2, true)
	s.Record(5, false)
	assert.Equal(t, 2, s.Length())
	assert.Equal(t, 5.0, s.Last(0))
	assert.Equal(t, 1.0, s.Last(1))
}

func TestRecordBoundsHistory(t *testing.T) {
	s := NewTickSeries()
	for i := 0; i < MaxSeriesSize+1000; i++ {
		s.Record(float64(i), true)
	}
	assert.LessOrEqual(t, s.Length(), MaxSeriesSize)
	assert.Equal(t, float64(MaxSeriesSize+999), s.Last(0))
}
