// Package logger provides leveled logging for wordsmith on top of pterm prefix printers.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Log is the process-wide logger used by every package.
var Log = &Logger{level: LevelInfo}

type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the flag spelling of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

type Logger struct {
	mu    sync.RWMutex
	level LogLevel
}

// Level returns the active level.
func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level
}

func (l *Logger) enabled(level LogLevel) bool {
	return l.Level() <= level
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.enabled(LevelTrace) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(LevelDebug) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.enabled(LevelInfo) {
		pterm.Info.Printfln(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.enabled(LevelWarn) {
		pterm.Warning.Printfln(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.enabled(LevelError) {
		pterm.Error.Printfln(format, args...)
	}
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	pterm.Error.Printfln(format, args...)
	os.Exit(1)
}

func (l *Logger) Debug(args ...interface{}) {
	if l.enabled(LevelDebug) {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.enabled(LevelInfo) {
		pterm.Info.Println(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.enabled(LevelWarn) {
		pterm.Warning.Println(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.enabled(LevelError) {
		pterm.Error.Println(args...)
	}
}

// ParseLevel converts a flag value into a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// SetLevel changes the level of the global logger.
func SetLevel(level string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}

	Log.mu.Lock()
	Log.level = parsed
	Log.mu.Unlock()

	if parsed <= LevelDebug {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}

	return nil
}
