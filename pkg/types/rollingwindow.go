package types

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// RollingWindow is a fixed-capacity ring buffer over float64 magnitudes.
// It supports appending a committed sample and overwriting the newest slot
// with a tentative revision; the oldest slot is evicted only when a
// committed sample is appended to a full window.
//
// Sum and the NaN slot count are maintained incrementally; min/max are
// cached and recomputed lazily after a mutation. All aggregates report NaN
// while the window is empty or holds at least one NaN slot, so formulas that
// want a different NaN treatment should work from Snapshot.
type RollingWindow struct {
	capacity int
	values   []float64
	start    int
	size     int

	sum      float64 // over non-NaN slots
	nanCount int

	minCache, maxCache float64
	dirty              bool
}

// NewRollingWindow creates a window with the given capacity. A capacity
// below 1 is a construction bug and panics.
func NewRollingWindow(capacity int) *RollingWindow {
	if capacity < 1 {
		panic(fmt.Sprintf("types: rolling window capacity must be >= 1, got %d", capacity))
	}
	return &RollingWindow{
		capacity: capacity,
		values:   make([]float64, capacity),
	}
}

// Add inserts a sample. A committed sample (isNew=true) is appended,
// evicting the oldest slot when the window is full. A revision
// (isNew=false) overwrites the newest slot without changing the size.
//
// A revision against an empty window is a caller protocol violation; it is
// treated as an append and logged rather than silently corrupting a slot.
func (w *RollingWindow) Add(v float64, isNew bool) {
	if !isNew {
		if w.size == 0 {
			log.Warnf("types: rolling window received a revision before any committed sample, treating as append")
		} else {
			last := (w.start + w.size - 1) % w.capacity
			w.remove(w.values[last])
			w.values[last] = v
			w.account(v)
			w.dirty = true
			return
		}
	}

	if w.size == w.capacity {
		w.remove(w.values[w.start])
		w.start = (w.start + 1) % w.capacity
		w.size--
	}

	w.values[(w.start+w.size)%w.capacity] = v
	w.size++
	w.account(v)
	w.dirty = true
}

func (w *RollingWindow) account(v float64) {
	if math.IsNaN(v) {
		w.nanCount++
	} else {
		w.sum += v
	}
}

func (w *RollingWindow) remove(v float64) {
	if math.IsNaN(v) {
		w.nanCount--
	} else {
		w.sum -= v
	}
}

func (w *RollingWindow) Capacity() int {
	return w.capacity
}

func (w *RollingWindow) Count() int {
	return w.size
}

func (w *RollingWindow) HasNaN() bool {
	return w.nanCount > 0
}

// Last returns the newest slot, NaN when empty.
func (w *RollingWindow) Last() float64 {
	if w.size == 0 {
		return math.NaN()
	}
	return w.values[(w.start+w.size-1)%w.capacity]
}

func (w *RollingWindow) Sum() float64 {
	if w.size == 0 || w.nanCount > 0 {
		return math.NaN()
	}
	return w.sum
}

func (w *RollingWindow) Average() float64 {
	if w.size == 0 || w.nanCount > 0 {
		return math.NaN()
	}
	return w.sum / float64(w.size)
}

func (w *RollingWindow) Min() float64 {
	if w.size == 0 || w.nanCount > 0 {
		return math.NaN()
	}
	w.refresh()
	return w.minCache
}

func (w *RollingWindow) Max() float64 {
	if w.size == 0 || w.nanCount > 0 {
		return math.NaN()
	}
	w.refresh()
	return w.maxCache
}

func (w *RollingWindow) refresh() {
	if !w.dirty {
		return
	}
	mn, mx := math.Inf(1), math.Inf(-1)
	for i := 0; i < w.size; i++ {
		v := w.values[(w.start+i)%w.capacity]
		if math.IsNaN(v) {
			continue
		}
		mn = math.Min(mn, v)
		mx = math.Max(mx, v)
	}
	w.minCache, w.maxCache = mn, mx
	w.dirty = false
}

// Snapshot copies the current contents, oldest first.
func (w *RollingWindow) Snapshot() []float64 {
	out := make([]float64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.values[(w.start+i)%w.capacity]
	}
	return out
}

func (w *RollingWindow) Clear() {
	w.start = 0
	w.size = 0
	w.sum = 0
	w.nanCount = 0
	w.dirty = false
	w.minCache = 0
	w.maxCache = 0
}
