package engine

import (
	"math/rand"
	"time"
)

// State of the indicator output.
type State int

const (
	Idle State = iota
	Flashing
)

func (s State) String() string {
	if s == Flashing {
		return "flashing"
	}
	return "idle"
}

// Params tune the flash probability and duration model.
type Params struct {
	Threshold   float64       // minimum load before flashes are considered
	MinDuration time.Duration // flash length at zero load
	MaxDuration time.Duration // flash length at full load
	MinPause    time.Duration // cooldown after a flash ends
	BaseChance  float64       // base probability multiplier per cycle
	CPUScaling  float64       // load influence on the flash chance
	Variation   float64       // random spread of the per-cycle chance
}

const jitterFraction = 0.3 // share of the duration range used as jitter

// Engine decides when the activity flash starts and stops. Entering
// Flashing is a per-cycle Bernoulli trial rather than a threshold
// crossing, so the flicker rate tracks load without being periodic. At
// high load the trial probability saturates past 1 and only the pause
// timer spaces flashes out; that saturation is the intended character.
type Engine struct {
	p Params

	state        State
	flashStart   time.Time
	lastFlashEnd time.Time
	duration     time.Duration

	rng *rand.Rand
	now func() time.Time
}

func New(p Params) *Engine {
	e := &Engine{
		p:   p,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	// Start the pause timer at boot so the first flash cannot fire
	// before MinPause has passed.
	e.lastFlashEnd = time.Now()
	return e
}

// Step advances the state machine one cycle for the given smoothed load
// and returns the state the output should show.
func (e *Engine) Step(load float64) State {
	now := e.now()
	switch e.state {
	case Flashing:
		if now.Sub(e.flashStart) > e.duration {
			e.state = Idle
			e.lastFlashEnd = now
		}
	case Idle:
		if load <= e.p.Threshold || now.Sub(e.lastFlashEnd) <= e.p.MinPause {
			break
		}
		chance := e.p.BaseChance * (load * e.p.CPUScaling) * (0.5 + e.rng.Float64()*e.p.Variation)
		if e.rng.Float64() < chance {
			e.duration = e.flashDuration(load)
			e.flashStart = now
			e.state = Flashing
		}
	}
	return e.state
}

// flashDuration scales with load and carries a symmetric random jitter,
// clamped back into [MinDuration, MaxDuration].
func (e *Engine) flashDuration(load float64) time.Duration {
	spread := float64(e.p.MaxDuration - e.p.MinDuration)
	factor := load / 100
	if factor > 1 {
		factor = 1
	}
	d := e.p.MinDuration + time.Duration(spread*factor)
	d += time.Duration((e.rng.Float64() - 0.5) * jitterFraction * spread)
	if d < e.p.MinDuration {
		d = e.p.MinDuration
	}
	if d > e.p.MaxDuration {
		d = e.p.MaxDuration
	}
	return d
}

// State reports the current state without advancing the machine.
func (e *Engine) State() State { return e.state }

// Duration reports the length chosen for the flash in progress.
func (e *Engine) Duration() time.Duration { return e.duration }
