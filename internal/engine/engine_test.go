package engine

import (
	"math/rand"
	"testing"
	"time"
)

func testParams() Params {
	return Params{
		Threshold:   0.5,
		MinDuration: 12 * time.Millisecond,
		MaxDuration: 50 * time.Millisecond,
		MinPause:    30 * time.Millisecond,
		BaseChance:  0.25,
		CPUScaling:  0.04,
		Variation:   0.3,
	}
}

// fakeClock steps a deterministic engine through time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(p Params, seed int64) (*Engine, *fakeClock) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	e := New(p)
	e.rng = rand.New(rand.NewSource(seed))
	e.now = func() time.Time { return clk.t }
	e.lastFlashEnd = clk.t
	return e, clk
}

// runUntilFlashing steps with the clock advancing per tick until the engine
// enters Flashing, failing the test if it never does.
func runUntilFlashing(t *testing.T, e *Engine, clk *fakeClock, load float64, tick time.Duration, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		clk.advance(tick)
		if e.Step(load) == Flashing {
			return
		}
	}
	t.Fatalf("engine never entered Flashing after %d steps at load %v", maxSteps, load)
}

func TestZeroLoadNeverFlashes(t *testing.T) {
	e, clk := newTestEngine(testParams(), 1)
	for i := 0; i < 1000; i++ {
		clk.advance(25 * time.Millisecond)
		if e.Step(0) == Flashing {
			t.Fatal("flashed at zero load")
		}
	}
}

func TestLoadBelowThresholdHolds(t *testing.T) {
	e, clk := newTestEngine(testParams(), 1)
	for i := 0; i < 1000; i++ {
		clk.advance(25 * time.Millisecond)
		if e.Step(0.5) == Flashing { // equal to threshold, not above
			t.Fatal("flashed at threshold load")
		}
	}
}

func TestFlashEndsWithinMaxDuration(t *testing.T) {
	p := testParams()
	e, clk := newTestEngine(p, 7)
	runUntilFlashing(t, e, clk, 90, 25*time.Millisecond, 10000)

	// Even if load stays pegged, the flash must end within MaxDuration.
	clk.advance(p.MaxDuration + time.Millisecond)
	if got := e.Step(100); got != Idle {
		t.Fatalf("state after MaxDuration = %v, want idle", got)
	}
}

func TestMinPauseBlocksImmediateReflash(t *testing.T) {
	p := testParams()
	e, clk := newTestEngine(p, 7)
	runUntilFlashing(t, e, clk, 90, 25*time.Millisecond, 10000)

	clk.advance(p.MaxDuration + time.Millisecond)
	if e.Step(100) != Idle {
		t.Fatal("flash did not end")
	}

	// Sustained full load during the cooldown: no flash may start.
	for elapsed := time.Duration(0); elapsed < p.MinPause; elapsed += time.Millisecond {
		clk.advance(time.Millisecond)
		if e.Step(100) == Flashing {
			t.Fatalf("reflash after %v, before MinPause %v", elapsed, p.MinPause)
		}
	}
}

func TestFlashDurationStaysClamped(t *testing.T) {
	p := testParams()
	e, _ := newTestEngine(p, 3)
	for _, load := range []float64{0, 10, 50, 100, 250} {
		for i := 0; i < 500; i++ {
			d := e.flashDuration(load)
			if d < p.MinDuration || d > p.MaxDuration {
				t.Fatalf("duration %v outside [%v, %v] at load %v", d, p.MinDuration, p.MaxDuration, load)
			}
		}
	}
}

func TestFlashDurationScalesWithLoad(t *testing.T) {
	p := testParams()
	e, _ := newTestEngine(p, 3)
	mean := func(load float64) time.Duration {
		var sum time.Duration
		const n = 2000
		for i := 0; i < n; i++ {
			sum += e.flashDuration(load)
		}
		return sum / n
	}
	low, high := mean(5), mean(95)
	if high <= low {
		t.Fatalf("mean duration at load 95 (%v) not above load 5 (%v)", high, low)
	}
}

func TestFlashRateIncreasesWithLoad(t *testing.T) {
	const ticksPerRun = 500
	countFlashes := func(load float64) int {
		e, clk := newTestEngine(testParams(), 42)
		flashes := 0
		prev := Idle
		for i := 0; i < ticksPerRun; i++ {
			clk.advance(25 * time.Millisecond)
			cur := e.Step(load)
			if prev == Idle && cur == Flashing {
				flashes++
			}
			prev = cur
		}
		return flashes
	}

	low := countFlashes(20)
	high := countFlashes(80)
	if low == 0 {
		t.Fatal("expected at least one flash at load 20 over 500 ticks")
	}
	if high <= low {
		t.Fatalf("flash count at load 80 (%d) not above load 20 (%d)", high, low)
	}
}
