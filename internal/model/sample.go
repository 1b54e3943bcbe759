package model

import "time"

// CPUStats holds the seven cumulative tick counters of the aggregate "cpu"
// line: monotonically non-decreasing totals since boot. A fresh value
// replaces the previous one wholesale on every read.
type CPUStats struct {
	User    float64
	Nice    float64
	System  float64
	Idle    float64
	Iowait  float64
	Irq     float64
	Softirq float64
}

// Total sums all seven counters.
func (s CPUStats) Total() float64 {
	return s.User + s.Nice + s.System + s.Idle + s.Iowait + s.Irq + s.Softirq
}

// IdleTotal is the time the CPU spent doing nothing useful.
func (s CPUStats) IdleTotal() float64 {
	return s.Idle + s.Iowait
}

// Status is the per-tick snapshot exchanged between the monitor loop and
// whichever console view is attached.
type Status struct {
	Timestamp  time.Time
	Load       float64 // smoothed percent 0-100
	Flashing   bool
	FlashCount uint64
}
