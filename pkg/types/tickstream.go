package types

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tickflow-io/tickflow/pkg/datatype/floats"
)

const (
	// MaxSeriesSize bounds the emitted history a stream retains.
	// byte size = 8 * 5000 = 40KB per slice
	MaxSeriesSize = 5_000

	// SeriesTruncateSize is how many elements are dropped per truncation.
	SeriesTruncateSize = 1_000
)

var tickStreamValue = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tickflow_stream_value",
		Help: "most recent value pushed into a named tick stream",
	}, []string{"stream"},
)

func init() {
	prometheus.MustRegister(tickStreamValue)
}

// ErrCyclicSubscription is returned by Subscribe when the requested edge
// would make a stream a direct or transitive subscriber of its own output.
var ErrCyclicSubscription = errors.New("types: subscription would create a cycle")

// TickSubscriber consumes every TimedValue a stream emits.
type TickSubscriber interface {
	Update(v TimedValue) float64
}

// TickSource is anything a downstream node can be constructed from: it
// exposes its emitted history and accepts subscriptions.
type TickSource interface {
	Series
	Subscribe(sub TickSubscriber) error
	OnTick(f func(v TimedValue))
}

type emitterHolder interface {
	Emitter() *TickEmitter
}

// TickEmitter broadcasts emitted TimedValues synchronously to subscribers in
// subscription order, then to plain function listeners. There is no
// buffering: a broadcast drives the whole reachable subgraph before
// returning.
type TickEmitter struct {
	subscribers []TickSubscriber
	listeners   []func(v TimedValue)
}

// Emitter returns the graph vertex identity of this stream. It is promoted
// through embedding so that every node type carries it for cycle checks.
func (e *TickEmitter) Emitter() *TickEmitter {
	return e
}

// Subscribe adds a downstream node. Subscribing an already-subscribed node
// is a no-op. The edge is rejected with ErrCyclicSubscription when the
// subscriber's downstream graph already reaches this stream.
func (e *TickEmitter) Subscribe(sub TickSubscriber) error {
	if e.subscribed(sub) {
		return nil
	}
	if h, ok := sub.(emitterHolder); ok {
		if h.Emitter().reaches(e, map[*TickEmitter]struct{}{}) {
			return errors.WithStack(ErrCyclicSubscription)
		}
	}
	e.subscribers = append(e.subscribers, sub)
	return nil
}

// Unsubscribe removes a downstream node; removing a non-subscriber is a
// no-op.
func (e *TickEmitter) Unsubscribe(sub TickSubscriber) {
	target := e.identity(sub)
	for i, s := range e.subscribers {
		if s == sub || (target != nil && e.identity(s) == target) {
			e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
			return
		}
	}
}

// OnTick registers a plain listener. Listeners are opaque to the cycle
// check; feeding a listener's output back into an upstream node is the
// caller's responsibility.
func (e *TickEmitter) OnTick(f func(v TimedValue)) {
	e.listeners = append(e.listeners, f)
}

// EmitTick broadcasts v depth-first: each subscriber's own emissions run to
// completion before the next subscriber is served.
func (e *TickEmitter) EmitTick(v TimedValue) {
	for _, s := range e.subscribers {
		s.Update(v)
	}
	for _, f := range e.listeners {
		f(v)
	}
}

func (e *TickEmitter) Subscribers() []TickSubscriber {
	return e.subscribers
}

func (e *TickEmitter) identity(sub TickSubscriber) *TickEmitter {
	if h, ok := sub.(emitterHolder); ok {
		return h.Emitter()
	}
	return nil
}

func (e *TickEmitter) subscribed(sub TickSubscriber) bool {
	target := e.identity(sub)
	for _, s := range e.subscribers {
		if s == sub {
			return true
		}
		if target != nil && e.identity(s) == target {
			return true
		}
	}
	return false
}

func (e *TickEmitter) reaches(target *TickEmitter, seen map[*TickEmitter]struct{}) bool {
	if e == target {
		return true
	}
	if _, ok := seen[e]; ok {
		return false
	}
	seen[e] = struct{}{}
	for _, s := range e.subscribers {
		if h, ok := s.(emitterHolder); ok && h.Emitter().reaches(target, seen) {
			return true
		}
	}
	return false
}

// TickSeries is an emitting stream plus the history of what it emitted:
// the base every indicator node builds on.
type TickSeries struct {
	TickEmitter

	Slice floats.Slice
}

func NewTickSeries(v ...float64) *TickSeries {
	return &TickSeries{Slice: v}
}

func (s *TickSeries) Last(i int) float64 {
	return s.Slice.Last(i)
}

func (s *TickSeries) Index(i int) float64 {
	return s.Slice.Last(i)
}

func (s *TickSeries) Length() int {
	return len(s.Slice)
}

// Record stores an emitted value: committed values append a slot, revisions
// overwrite the newest slot. History is truncated once it outgrows
// MaxSeriesSize.
func (s *TickSeries) Record(v float64, isNew bool) {
	if isNew || len(s.Slice) == 0 {
		s.Slice.Push(v)
	} else {
		s.Slice[len(s.Slice)-1] = v
	}

	if len(s.Slice) > MaxSeriesSize {
		s.Slice = s.Slice.Truncate(MaxSeriesSize - SeriesTruncateSize)
	}
}

// RecordAndEmit stores the value and broadcasts it to subscribers.
func (s *TickSeries) RecordAndEmit(v TimedValue) {
	s.Record(v.Value, v.IsNew)
	s.EmitTick(v)
}

func (s *TickSeries) Reset() {
	s.Slice = s.Slice[:0]
}

// TickStream is the ingestion entry point of a computation graph: an
// external feed pushes TimedValues into it and every subscribed indicator
// is driven synchronously. When the "metrics" flag is set in the
// configuration, the stream exports its latest value as a prometheus gauge.
type TickStream struct {
	TickSeries

	name     string
	lastTime time.Time
	primed   bool
}

func NewTickStream(name string) *TickStream {
	return &TickStream{name: name}
}

// Push ingests one sample. Samples with decreasing timestamps violate the
// feed contract and are dropped with a warning.
func (s *TickStream) Push(v TimedValue) {
	if s.primed && v.Time.Before(s.lastTime) {
		log.Warnf("types: tick stream %q received out-of-order sample %s < %s, dropping",
			s.name, v.Time, s.lastTime)
		return
	}
	s.lastTime = v.Time
	s.primed = true

	if viper.GetBool("metrics") {
		tickStreamValue.With(prometheus.Labels{"stream": s.name}).Set(v.Value)
	}

	s.RecordAndEmit(v)
}

func (s *TickStream) Name() string {
	return s.name
}
