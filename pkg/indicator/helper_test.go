package indicator

import (
	"time"

	"github.com/tickflow-io/tickflow/pkg/types"
)

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func at(i int) time.Time {
	return testEpoch.Add(time.Duration(i) * time.Minute)
}

func feed(s *types.TickStream, values ...float64) {
	for i, v := range values {
		s.Push(types.NewTick(at(i), v))
	}
}
