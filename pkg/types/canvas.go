package types

import (
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// Canvas renders emitted series for inspection.
type Canvas struct {
	chart.Chart
	Interval time.Duration
}

func NewCanvas(title string, intervals ...time.Duration) *Canvas {
	valueFormatter := chart.TimeValueFormatter
	interval := time.Minute
	if len(intervals) > 0 {
		interval = intervals[0]
		if interval > 24*time.Hour {
			valueFormatter = chart.TimeDateValueFormatter
		} else if interval > time.Hour {
			valueFormatter = chart.TimeHourValueFormatter
		} else {
			valueFormatter = chart.TimeMinuteValueFormatter
		}
	} else {
		valueFormatter = chart.IntValueFormatter
	}
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: valueFormatter,
			},
		},
		Interval: interval,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

func expand(a []float64, length int, defaultVal float64) []float64 {
	l := len(a)
	if l >= length {
		return a
	}
	for i := 0; i < length-l; i++ {
		a = append([]float64{defaultVal}, a...)
	}
	return a
}

// Plot adds the last length values of a series against a timeline ending at
// endTime, spaced by the canvas interval.
func (canvas *Canvas) Plot(tag string, a Series, endTime time.Time, length int, intervals ...time.Duration) {
	if a.Length() == 0 {
		return
	}

	interval := canvas.Interval
	if len(intervals) > 0 {
		interval = intervals[0]
	}

	var timeline []time.Time
	for i := length - 1; i >= 0; i-- {
		timeline = append(timeline, endTime.Add(-time.Duration(i)*interval))
	}

	oldest := a.Last(a.Length() - 1)
	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		YValues: expand(Reverse(a, length), length, oldest),
		XValues: timeline,
	})
}

// PlotRaw adds the last length values of a series against its slot index.
func (canvas *Canvas) PlotRaw(tag string, a Series, length int) {
	if a.Length() == 0 {
		return
	}

	var x []float64
	for i := 0; i < length; i++ {
		x = append(x, float64(i))
	}
	oldest := a.Last(a.Length() - 1)
	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		XValues: x,
		YValues: expand(Reverse(a, length), length, oldest),
	})
}
