// Package monitor runs the fixed-period poll-decide-drive loop tying the
// sampler, the flash engine and the LED driver together.
package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hub75hat/actled/internal/config"
	"github.com/hub75hat/actled/internal/engine"
	"github.com/hub75hat/actled/internal/led"
	"github.com/hub75hat/actled/internal/model"
	"github.com/hub75hat/actled/internal/sampler"
)

type Monitor struct {
	cfg    config.Config
	samp   *sampler.Sampler
	eng    *engine.Engine
	drv    led.Driver
	logger *zap.Logger

	flashCount uint64
}

func New(cfg config.Config, drv led.Driver, logger *zap.Logger) *Monitor {
	return &Monitor{
		cfg:  cfg,
		samp: sampler.New(cfg.Smoothing),
		eng: engine.New(engine.Params{
			Threshold:   cfg.Threshold,
			MinDuration: cfg.MinFlash,
			MaxDuration: cfg.MaxFlash,
			MinPause:    cfg.MinPause,
			BaseChance:  cfg.BaseChance,
			CPUScaling:  cfg.CPUScaling,
			Variation:   cfg.Variation,
		}),
		drv:    drv,
		logger: logger,
	}
}

// Run drives the loop until ctx is done, publishing one Status per tick.
// On exit the LED is forced off and the channel closed; releasing the GPIO
// capability stays with whoever opened the driver.
func (m *Monitor) Run(ctx context.Context) <-chan model.Status {
	ch := make(chan model.Status, 1)
	go func() {
		defer close(ch)
		defer m.drv.Off()

		m.drv.Idle()
		shown := engine.Idle

		ticker := time.NewTicker(m.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				load, err := m.samp.Load()
				if err != nil {
					// Degrade to the last smoothed value.
					m.logger.Debug("cpu sample failed, reusing last value", zap.Error(err))
				}

				state := m.eng.Step(load)
				if state != shown {
					if state == engine.Flashing {
						m.flashCount++
						m.drv.Activity()
					} else {
						m.drv.Idle()
					}
					shown = state
				}

				status := model.Status{
					Timestamp:  t,
					Load:       load,
					Flashing:   state == engine.Flashing,
					FlashCount: m.flashCount,
				}
				// Never let a slow console consumer stall the LED.
				select {
				case ch <- status:
				default:
				}
			}
		}
	}()
	return ch
}
