// Package logutil owns the process-wide zap logger.
package logutil

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// InitLogger builds the shared logger. Interactive runs get the console
// development encoder on stderr; service runs get production JSON.
func InitLogger(interactive bool) {
	once.Do(func() {
		var err error
		if interactive {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			logger = zap.NewNop()
		}
	})
}

// GetLogger returns the shared logger, initializing a production one if
// InitLogger was never called.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitLogger(false)
	}
	return logger
}
