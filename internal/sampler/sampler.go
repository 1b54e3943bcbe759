package sampler

import (
	"errors"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/hub75hat/actled/internal/model"
)

var errNoCPUData = errors.New("sampler: no aggregate cpu line")

// Sampler derives an exponentially smoothed CPU load percentage from
// consecutive aggregate tick readings.
type Sampler struct {
	alpha float64 // smoothing factor; higher = slower to move

	read        func() (model.CPUStats, error)
	prev        model.CPUStats
	smoothed    float64
	initialized bool
}

// New builds a Sampler reading the aggregate counters from the OS.
func New(alpha float64) *Sampler {
	return NewWithReader(alpha, readTimes)
}

// NewWithReader substitutes the tick source, for tests.
func NewWithReader(alpha float64, read func() (model.CPUStats, error)) *Sampler {
	return &Sampler{alpha: alpha, read: read}
}

func readTimes() (model.CPUStats, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return model.CPUStats{}, err
	}
	if len(times) == 0 {
		return model.CPUStats{}, errNoCPUData
	}
	t := times[0]
	return model.CPUStats{
		User:    t.User,
		Nice:    t.Nice,
		System:  t.System,
		Idle:    t.Idle,
		Iowait:  t.Iowait,
		Irq:     t.Irq,
		Softirq: t.Softirq,
	}, nil
}

// Load takes a fresh reading and returns the updated smoothed load in
// [0, 100]. The very first reading only records a baseline and yields 0.
// On a read failure the last smoothed value is returned alongside the
// error so the caller can keep running on stale data.
func (s *Sampler) Load() (float64, error) {
	cur, err := s.read()
	if err != nil {
		return s.smoothed, err
	}
	if !s.initialized {
		s.initialized = true
		s.prev = cur
		return 0, nil
	}

	dt := cur.Total() - s.prev.Total()
	di := cur.IdleTotal() - s.prev.IdleTotal()
	s.prev = cur

	// Counters did not advance between reads: keep the previous value
	// rather than dividing by zero.
	if dt <= 0 {
		return s.smoothed, nil
	}

	inst := 100 * (1 - di/dt)
	s.smoothed = s.smoothed*s.alpha + inst*(1-s.alpha)
	return s.smoothed, nil
}

// Current reports the last smoothed value without taking a reading.
func (s *Sampler) Current() float64 { return s.smoothed }
