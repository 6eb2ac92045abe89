package potential

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent is the handler behind a quiet solver. Enabled is false, so slog
// drops the relaxation start/finish records before building them.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (s silent) WithAttrs([]slog.Attr) slog.Handler      { return s }
func (s silent) WithGroup(string) slog.Handler           { return s }

// solverLog is read by every Field without WithLogger at the start of each
// CalculatePotential, possibly while another goroutine calls SetLogger.
var solverLog atomic.Pointer[slog.Logger]

func init() { solverLog.Store(slog.New(silent{})) }

// SetLogger configures the logger used by every Field that was not given
// WithLogger. By default the package is silent. Pass nil to silence it again.
//
// Levels used:
//   - [slog.LevelDebug]: solve start and finish (grid size, iterations,
//     workers, elapsed time).
//
// Example:
//
//	potential.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	solverLog.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return solverLog.Load()
}
