// Package logger provides levelled stderr logging for the trecct CLI.
// Warnings are always printed. Each --verbose flag raises the level:
// -v adds info messages, -vv adds debug messages such as suppressed fields.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is a logging threshold.
type Level int

// Logging levels, from quietest to noisiest.
const (
	LevelWarn Level = iota
	LevelInfo
	LevelDebug
)

var (
	mu     sync.RWMutex
	level            = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the logging threshold.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbosity maps a --verbose flag count onto a level.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		SetLevel(LevelWarn)
	case count == 1:
		SetLevel(LevelInfo)
	default:
		SetLevel(LevelDebug)
	}
}

// Enabled returns true if messages at l are printed.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l <= level
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(l Level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l <= level {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message at debug level.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Info prints a message at info level.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning. Warnings are printed at every level.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Section prints a section header at info level.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if LevelInfo <= level {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
