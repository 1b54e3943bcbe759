package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hub75hat/actled/internal/config"
	"github.com/hub75hat/actled/internal/led"
	"github.com/hub75hat/actled/internal/monitor"
	"github.com/hub75hat/actled/internal/ui"
	"github.com/hub75hat/actled/pkg/logutil"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromFlags(os.Args[1:])
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 2
	}

	logutil.InitLogger(!cfg.Quiet)
	logger := logutil.GetLogger()
	defer logger.Sync()

	// Indicator work should never compete with the load it indicates.
	_ = syscall.Setpriority(syscall.PRIO_PROCESS, 0, 19)

	drv, err := led.Open(
		led.Pins{Idle: cfg.IdlePin, Activity: cfg.ActivityPin},
		uint32(cfg.Brightness), cfg.PWMHz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	defer drv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigch := make(chan os.Signal, 1)
		signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		sig := <-sigch
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	logger.Info("activity indicator started",
		zap.Int("idle_pin", cfg.IdlePin),
		zap.Int("activity_pin", cfg.ActivityPin),
		zap.Duration("interval", cfg.Interval))

	stream := monitor.New(cfg, drv, logger).Run(ctx)

	switch {
	case cfg.TUI:
		if err := ui.RunTUI(stream, cancel); err != nil {
			logger.Error("status view failed", zap.Error(err))
		}
	case cfg.Quiet:
		for range stream {
		}
	default:
		ui.PrintLines(os.Stdout, stream)
	}

	logger.Info("activity indicator stopped")
	return 0
}
