package ports

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level label.
func (l Level) String() string {
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
		return "UNKNOWN"
	}
}

// Field is a structured logging field.
type Field struct {
	Key   string
	Value any
}

// F creates a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the structured logger carried through the core. Implementations
// must be safe for use from a single goroutine at a time; the core never
// logs concurrently.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a Logger that adds the given fields to every entry.
	With(fields ...Field) Logger
}
