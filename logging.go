// logging.go - structured logging for the coreexec runtime.
//
// Mirrors the teacher's package-level pluggable Logger: the core never
// hard-depends on a specific backend, so firmware can route diagnostics
// to a UART driver while hosted tests can wire github.com/joeycumines/
// logiface (see logifaceadapter) without this package importing it.
package coreexec

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int32

const (
	// LevelDebug is for detailed scheduler diagnostics (round boundaries,
	// wake sources).
	LevelDebug LogLevel = iota
	// LevelInfo is for lifecycle events (executor created, task spawned).
	LevelInfo
	// LevelWarn is for recoverable but noteworthy conditions.
	LevelWarn
	// LevelError is for conditions that precede an abort.
	LevelError
)

// String returns the level's name.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// LogEntry is a single structured log record.
type LogEntry struct {
	Level     LogLevel
	Category  string // "executor", "channel", "mutex", "registry"
	TaskID    int64
	Message   string
	Err       error
	Timestamp time.Time
}

// Logger is the structured logging interface implemented by any backend
// the application wants to wire in.
type Logger interface {
	Log(entry LogEntry)
	IsEnabled(level LogLevel) bool
}

// noOpLogger discards everything; this is the library default so importing
// coreexec never prints without an explicit opt-in.
type noOpLogger struct{}

func (noOpLogger) Log(LogEntry)            {}
func (noOpLogger) IsEnabled(LogLevel) bool { return false }

// NewNoOpLogger returns a Logger that discards all entries.
func NewNoOpLogger() Logger { return noOpLogger{} }

// TextLogger is a minimal Logger writing one line per entry to an
// io.Writer-like *os.File. It exists for local development; production
// firmware supplies its own Logger backed by a UART or ring-buffer driver.
type TextLogger struct {
	level atomic.Int32
	mu    sync.Mutex
	out   *os.File
}

// NewTextLogger creates a TextLogger writing to out at the given minimum
// level.
func NewTextLogger(out *os.File, level LogLevel) *TextLogger {
	l := &TextLogger{out: out}
	l.level.Store(int32(level))
	return l
}

// IsEnabled reports whether level would be written.
func (l *TextLogger) IsEnabled(level LogLevel) bool {
	return int32(level) >= l.level.Load()
}

// Log writes entry if its level is enabled.
func (l *TextLogger) Log(entry LogEntry) {
	if !l.IsEnabled(entry.Level) {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if entry.Err != nil {
		fmt.Fprintf(l.out, "%s %-5s [%s] task=%d %s: %v\n",
			entry.Timestamp.Format("15:04:05.000"), entry.Level, entry.Category, entry.TaskID, entry.Message, entry.Err)
		return
	}
	fmt.Fprintf(l.out, "%s %-5s [%s] task=%d %s\n",
		entry.Timestamp.Format("15:04:05.000"), entry.Level, entry.Category, entry.TaskID, entry.Message)
}

var globalLogger struct {
	sync.RWMutex
	logger Logger
}

// SetLogger installs the package-level default Logger used by executors
// constructed without WithLogger.
func SetLogger(logger Logger) {
	globalLogger.Lock()
	defer globalLogger.Unlock()
	globalLogger.logger = logger
}

func getGlobalLogger() Logger {
	globalLogger.RLock()
	defer globalLogger.RUnlock()
	if globalLogger.logger != nil {
		return globalLogger.logger
	}
	return NewNoOpLogger()
}
