package led

import "sync"

// Recorder is a Driver for tests: it records the call sequence and tracks
// which lines are asserted so mutual exclusivity can be checked.
type Recorder struct {
	mu sync.Mutex

	Calls        []string
	idleLine     bool
	activityLine bool
	bothAsserted bool
	closes       int
}

func (r *Recorder) Idle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activityLine = false
	r.idleLine = true
	r.record("idle")
}

func (r *Recorder) Activity() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idleLine = false
	r.activityLine = true
	r.record("activity")
}

func (r *Recorder) Off() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idleLine = false
	r.activityLine = false
	r.record("off")
}

func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.idleLine = false
	r.activityLine = false
	r.closes++
	r.record("close")
}

func (r *Recorder) record(call string) {
	r.Calls = append(r.Calls, call)
	if r.idleLine && r.activityLine {
		r.bothAsserted = true
	}
}

// BothEverAsserted reports whether any call sequence left both lines on.
func (r *Recorder) BothEverAsserted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bothAsserted
}

// LastCall returns the most recent call, or "" before any.
func (r *Recorder) LastCall() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Calls) == 0 {
		return ""
	}
	return r.Calls[len(r.Calls)-1]
}

// Snapshot returns the current line levels (idle, activity).
func (r *Recorder) Snapshot() (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.idleLine, r.activityLine
}

// Closes reports how many times Close was called.
func (r *Recorder) Closes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}

var _ Driver = (*Recorder)(nil)
