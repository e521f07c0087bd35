package logger

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// SimpleLogger implements the [Logger] interface on top of a standard
// library [log.Logger]. Records are written as a level tag, the message and
// the key=value attributes on a single line.
type SimpleLogger struct {
	mu     sync.Mutex
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new [SimpleLogger] that writes records at or
// above the given level.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	return &SimpleLogger{
		logger: logger,
		level:  level,
	}
}

// Trace logs at the trace level.
func (l *SimpleLogger) Trace(msg string, args ...any) {
	l.output(LevelTrace, msg, args)
}

// Debug logs at the debug level.
func (l *SimpleLogger) Debug(msg string, args ...any) {
	l.output(LevelDebug, msg, args)
}

// Info logs at the info level.
func (l *SimpleLogger) Info(msg string, args ...any) {
	l.output(LevelInfo, msg, args)
}

// Warn logs at the warn level.
func (l *SimpleLogger) Warn(msg string, args ...any) {
	l.output(LevelWarn, msg, args)
}

// Error logs at the error level.
func (l *SimpleLogger) Error(msg string, args ...any) {
	l.output(LevelError, msg, args)
}

// Enabled reports whether the SimpleLogger handles records at the given level.
func (l *SimpleLogger) Enabled(level Level) bool {
	return level >= l.level && l.level != LevelOff
}

func (l *SimpleLogger) output(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	line := formatRecord(level, msg, args)

	l.mu.Lock()
	defer l.mu.Unlock()
	// skip [output, the level method]
	_ = l.logger.Output(3, line)
}

func formatRecord(level Level, msg string, args []any) string {
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteString(" msg=")
	b.WriteString(msg)

	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			_, _ = fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
		} else {
			_, _ = fmt.Fprintf(&b, " !BADKEY=%v", args[i])
		}
	}

	return b.String()
}
