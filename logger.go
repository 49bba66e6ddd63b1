package pageflip

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. Accessed atomically so SetLogger may be
// called from a different goroutine than the one driving the effect.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by pageflip and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: driver activation/deactivation, clamped levels, degenerate surfaces
//   - Warn: unknown easing names, configs rejected by ParseConfig
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l.Named("pageflip"))
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
