package logging

import "github.com/rigup-sh/rigup/internal/ports"

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

// NewNopLogger creates a NopLogger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (l *NopLogger) Debug(string, ...ports.Field) {}
func (l *NopLogger) Info(string, ...ports.Field)  {}
func (l *NopLogger) Warn(string, ...ports.Field)  {}
func (l *NopLogger) Error(string, ...ports.Field) {}

func (l *NopLogger) With(...ports.Field) ports.Logger { return l }

var _ ports.Logger = (*NopLogger)(nil)
