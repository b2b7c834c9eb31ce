package indicator

import (
	"fmt"

	"github.com/tickflow-io/tickflow/pkg/types"
)

type bollState struct{}

// BollStream emits the band width k*stddev; UpBand and DownBand carry the
// mid band (SMA) shifted by it.
//
// data flow:
//
//	source -> SMA ----------------------\
//	source -> StdDev -> band width ------> UpBand, DownBand
type BollStream struct {
	*Node[bollState]

	UpBand, DownBand *types.TickSeries

	SMA    *SMAStream
	StdDev *StdDevStream
}

func BOLL(source types.TickSource, window int, k float64) *BollStream {
	requirePeriod("BOLL", window)
	if k <= 0 {
		panic(fmt.Sprintf("BOLL: band multiplier must be positive, got %v", k))
	}

	// bind the sub-indicators before the band calculator so they are
	// up to date when it runs
	sma := SMA(source, window)
	stdDev := StdDev(source, window, 0)

	n := NewNode[bollState](Config{Warmup: window},
		func(_ *bollState, v types.TimedValue, _ *Node[bollState]) float64 {
			return v.Value * k
		})
	Bind(stdDev, n)

	s := &BollStream{
		Node:     n,
		UpBand:   types.NewTickSeries(),
		DownBand: types.NewTickSeries(),
		SMA:      sma,
		StdDev:   stdDev,
	}

	// on band update
	n.OnTick(func(band types.TimedValue) {
		mid := s.SMA.Last(0)
		s.UpBand.RecordAndEmit(types.TimedValue{Time: band.Time, Value: mid + band.Value, IsNew: band.IsNew})
		s.DownBand.RecordAndEmit(types.TimedValue{Time: band.Time, Value: mid - band.Value, IsNew: band.IsNew})
	})
	return s
}
