// Package logifaceadapter wires coreexec.Logger onto
// github.com/joeycumines/logiface, so a hosted application can route
// scheduler diagnostics through any logiface-backed sink (stumpy, slog,
// zerolog, logrus) without coreexec itself depending on logiface.
//
// Grounded on the teacher family's own backend packages (logiface-slog,
// logiface-stumpy, logiface-zerolog), which all follow the same shape:
// a small file adapting logiface.Logger[E] to someone else's interface.
package logifaceadapter

import (
	"github.com/joeycumines/go-coreexec"
	"github.com/joeycumines/logiface"
)

// Adapter implements coreexec.Logger by forwarding entries to a
// logiface.Logger[E]. E is left generic so callers can plug in whichever
// Event implementation their chosen logiface backend provides.
type Adapter[E logiface.Event] struct {
	logger *logiface.Logger[E]
}

// New wraps logger as a coreexec.Logger.
func New[E logiface.Event](logger *logiface.Logger[E]) *Adapter[E] {
	return &Adapter[E]{logger: logger}
}

// IsEnabled reports whether the wrapped logger would emit at level.
func (a *Adapter[E]) IsEnabled(level coreexec.LogLevel) bool {
	return toLogifaceLevel(level) <= a.logger.Level()
}

// Log forwards entry to the wrapped logiface.Logger, mapping coreexec's
// flat LogEntry fields onto the builder's fluent field methods.
func (a *Adapter[E]) Log(entry coreexec.LogEntry) {
	b := a.logger.Build(toLogifaceLevel(entry.Level))
	if b == nil {
		return
	}
	if entry.Category != "" {
		b = b.Str("category", entry.Category)
	}
	b = b.Int64("task_id", entry.TaskID)
	if entry.Err != nil {
		b = b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

func toLogifaceLevel(level coreexec.LogLevel) logiface.Level {
	switch level {
	case coreexec.LevelDebug:
		return logiface.LevelDebug
	case coreexec.LevelInfo:
		return logiface.LevelInformational
	case coreexec.LevelWarn:
		return logiface.LevelWarning
	case coreexec.LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}
