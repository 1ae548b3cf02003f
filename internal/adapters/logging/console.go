// Package logging provides Logger implementations.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rigup-sh/rigup/internal/ports"
)

// ConsoleLogger writes structured log lines to a writer, in either a
// human-readable text format or JSON.
type ConsoleLogger struct {
	mu         sync.Mutex
	out        io.Writer
	level      ports.Level
	fields     []ports.Field
	jsonFormat bool
}

// Option configures a ConsoleLogger.
type Option func(*ConsoleLogger)

// WithOutput sets the output writer (default os.Stderr).
func WithOutput(w io.Writer) Option {
	return func(l *ConsoleLogger) { l.out = w }
}

// WithLevel sets the minimum level (default Info).
func WithLevel(level ports.Level) Option {
	return func(l *ConsoleLogger) { l.level = level }
}

// WithJSON switches output to JSON lines.
func WithJSON(enabled bool) Option {
	return func(l *ConsoleLogger) { l.jsonFormat = enabled }
}

// NewConsoleLogger creates a ConsoleLogger.
func NewConsoleLogger(opts ...Option) *ConsoleLogger {
	l := &ConsoleLogger{
		out:   os.Stderr,
		level: ports.LevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ConsoleLogger) Debug(msg string, fields ...ports.Field) {
	l.log(ports.LevelDebug, msg, fields)
}

func (l *ConsoleLogger) Info(msg string, fields ...ports.Field) {
	l.log(ports.LevelInfo, msg, fields)
}

func (l *ConsoleLogger) Warn(msg string, fields ...ports.Field) {
	l.log(ports.LevelWarn, msg, fields)
}

func (l *ConsoleLogger) Error(msg string, fields ...ports.Field) {
	l.log(ports.LevelError, msg, fields)
}

// With returns a logger that prepends fields to every entry.
func (l *ConsoleLogger) With(fields ...ports.Field) ports.Logger {
	combined := make([]ports.Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)
	return &ConsoleLogger{
		out:        l.out,
		level:      l.level,
		fields:     combined,
		jsonFormat: l.jsonFormat,
	}
}

func (l *ConsoleLogger) log(level ports.Level, msg string, fields []ports.Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all := make([]ports.Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	if l.jsonFormat {
		l.writeJSON(level, msg, all)
		return
	}
	l.writeText(level, msg, all)
}

func (l *ConsoleLogger) writeJSON(level ports.Level, msg string, fields []ports.Field) {
	entry := map[string]any{
		"time":  time.Now().UTC().Format(time.RFC3339),
		"level": level.String(),
		"msg":   msg,
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(l.out, string(data))
}

func (l *ConsoleLogger) writeText(level ports.Level, msg string, fields []ports.Field) {
	line := fmt.Sprintf("%s [%s] %s", time.Now().Format("15:04:05"), level.String(), msg)
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	_, _ = fmt.Fprintln(l.out, line)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
