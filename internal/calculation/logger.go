package calculation

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLevel maps a name such as "debug" or "warn" to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// StdLogger writes leveled lines through a standard library log.Logger.
type StdLogger struct {
	out   *log.Logger
	level Level
}

// NewStdLogger logs messages at or above level to w.
func NewStdLogger(w io.Writer, level Level) *StdLogger {
	return &StdLogger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *StdLogger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("%-5s %s", level, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }
