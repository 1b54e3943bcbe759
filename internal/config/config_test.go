package config

import (
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFromFlags(t *testing.T) {
	cfg := FromFlags([]string{
		"-interval", "50ms",
		"-threshold", "5",
		"-activity-pin", "13",
		"-quiet",
	})
	if cfg.Interval != 50*time.Millisecond {
		t.Fatalf("interval = %v, want 50ms", cfg.Interval)
	}
	if cfg.Threshold != 5 {
		t.Fatalf("threshold = %v, want 5", cfg.Threshold)
	}
	if cfg.ActivityPin != 13 {
		t.Fatalf("activity pin = %d, want 13", cfg.ActivityPin)
	}
	if !cfg.Quiet {
		t.Fatal("quiet not set")
	}
	// Untouched options keep their defaults.
	if cfg.Brightness != Default().Brightness {
		t.Fatalf("brightness = %d, want default %d", cfg.Brightness, Default().Brightness)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ACTLED_INTERVAL", "100ms")
	t.Setenv("ACTLED_QUIET", "1")
	t.Setenv("ACTLED_BRIGHTNESS", "64")
	cfg := FromFlags(nil)
	if cfg.Interval != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", cfg.Interval)
	}
	if !cfg.Quiet {
		t.Fatal("quiet not set from env")
	}
	if cfg.Brightness != 64 {
		t.Fatalf("brightness = %d, want 64", cfg.Brightness)
	}
}

func TestValidateRejectsNonsense(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"smoothing one", func(c *Config) { c.Smoothing = 1 }},
		{"negative smoothing", func(c *Config) { c.Smoothing = -0.1 }},
		{"min above max flash", func(c *Config) { c.MinFlash = c.MaxFlash + time.Millisecond }},
		{"negative pause", func(c *Config) { c.MinPause = -time.Millisecond }},
		{"brightness overflow", func(c *Config) { c.Brightness = 300 }},
		{"zero pwm", func(c *Config) { c.PWMHz = 0 }},
		{"same pins", func(c *Config) { c.ActivityPin = c.IdlePin }},
		{"quiet tui clash", func(c *Config) { c.Quiet = true; c.TUI = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
