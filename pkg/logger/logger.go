// Package logger declares the logging contract shared by the dashboard components.
package logger

// Level is a logging severity.
type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off.
	DebugLevel Level = iota // DebugLevel is used for per-event tracing of control changes.
	InfoLevel               // InfoLevel is used for lifecycle messages.
	WarnLevel               // WarnLevel is used for recoverable problems.
	ErrorLevel              // ErrorLevel is used for failed requests.
	FatalLevel              // FatalLevel is used for startup failures that exit the process.
	NoLevel                 // NoLevel is used when the level is unknown.
)

// Logger is implemented by every logging backend used by the dashboard.
type Logger interface {
	WithField(key string, value any) Logger  // WithField returns a logger with the given key-value pair.
	WithFields(fields map[string]any) Logger // WithFields returns a logger with the given fields.
	WithError(err error) Logger              // WithError returns a logger carrying err.

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}

// ParseLevel maps a textual level name to a Level. Unknown names yield InfoLevel.
func ParseLevel(name string) Level {
	switch name {
	case "debug", "trace":
		return DebugLevel
	case "info", "":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal", "panic":
		return FatalLevel
	case "disabled", "off":
		return Disabled
	default:
		return InfoLevel
	}
}
