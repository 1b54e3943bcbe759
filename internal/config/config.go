package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// Config carries runtime options for actled.
type Config struct {
	Interval  time.Duration // polling period
	Smoothing float64       // load smoothing factor in [0, 1)

	Threshold  float64 // minimum load before flashes are considered
	MinFlash   time.Duration
	MaxFlash   time.Duration
	MinPause   time.Duration
	BaseChance float64
	CPUScaling float64
	Variation  float64

	IdlePin     int // BCM number of the steady-color leg
	ActivityPin int // BCM number of the PWM leg (12, 13, 18 or 19)
	Brightness  uint
	PWMHz       int

	Quiet bool // suppress the status line for unattended runs
	TUI   bool // full-screen view instead of the one-line status
}

func Default() Config {
	return Config{
		Interval:    25 * time.Millisecond,
		Smoothing:   0.5,
		Threshold:   0.5,
		MinFlash:    12 * time.Millisecond,
		MaxFlash:    50 * time.Millisecond,
		MinPause:    30 * time.Millisecond,
		BaseChance:  0.25,
		CPUScaling:  0.04,
		Variation:   0.3,
		IdlePin:     16,
		ActivityPin: 18,
		Brightness:  32,
		PWMHz:       1000,
		Quiet:       false,
		TUI:         false,
	}
}

// FromFlags parses flags and environment overrides.
func FromFlags(args []string) Config {
	cfg := Default()
	fs := flag.NewFlagSet("actled", flag.ExitOnError)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "polling interval")
	fs.Float64Var(&cfg.Smoothing, "smoothing", cfg.Smoothing, "load smoothing factor (lower = more responsive)")
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "minimum load percent to trigger flashes")
	fs.DurationVar(&cfg.MinFlash, "min-flash", cfg.MinFlash, "flash duration at low load")
	fs.DurationVar(&cfg.MaxFlash, "max-flash", cfg.MaxFlash, "flash duration at high load")
	fs.DurationVar(&cfg.MinPause, "min-pause", cfg.MinPause, "minimum pause between flashes")
	fs.Float64Var(&cfg.BaseChance, "base-chance", cfg.BaseChance, "base flash probability multiplier")
	fs.Float64Var(&cfg.CPUScaling, "cpu-scaling", cfg.CPUScaling, "load influence on flash chance")
	fs.Float64Var(&cfg.Variation, "variation", cfg.Variation, "random variation in flash timing")
	fs.IntVar(&cfg.IdlePin, "idle-pin", cfg.IdlePin, "BCM pin of the idle-color leg")
	fs.IntVar(&cfg.ActivityPin, "activity-pin", cfg.ActivityPin, "BCM pin of the activity leg (hardware PWM)")
	fs.UintVar(&cfg.Brightness, "brightness", cfg.Brightness, "activity brightness 0-255")
	fs.IntVar(&cfg.PWMHz, "pwm-freq", cfg.PWMHz, "PWM frequency in Hz")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "no console status (service mode)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "full-screen status view")
	_ = fs.Parse(args)

	if v := os.Getenv("ACTLED_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Interval = parsed
		}
	}
	if v := os.Getenv("ACTLED_QUIET"); v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("ACTLED_BRIGHTNESS"); v != "" {
		var b uint
		if _, err := fmt.Sscanf(v, "%d", &b); err == nil {
			cfg.Brightness = b
		}
	}
	return cfg
}

// Validate rejects option combinations the loop cannot run with.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if c.Smoothing < 0 || c.Smoothing >= 1 {
		return fmt.Errorf("smoothing must be in [0, 1), got %v", c.Smoothing)
	}
	if c.MinFlash <= 0 || c.MaxFlash < c.MinFlash {
		return fmt.Errorf("flash durations must satisfy 0 < min <= max, got %v..%v", c.MinFlash, c.MaxFlash)
	}
	if c.MinPause < 0 {
		return fmt.Errorf("min-pause must not be negative, got %v", c.MinPause)
	}
	if c.Brightness > 255 {
		return fmt.Errorf("brightness must be 0-255, got %d", c.Brightness)
	}
	if c.PWMHz <= 0 {
		return fmt.Errorf("pwm-freq must be positive, got %d", c.PWMHz)
	}
	if c.IdlePin == c.ActivityPin {
		return fmt.Errorf("idle and activity pins must differ, both are %d", c.IdlePin)
	}
	if c.Quiet && c.TUI {
		return fmt.Errorf("quiet and tui are mutually exclusive")
	}
	return nil
}
