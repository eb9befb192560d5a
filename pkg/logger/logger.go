// Package logger defines the logging contract shared by the chart, the loaders and the CLI.
package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off.
	TraceLevel Level = iota // TraceLevel is used for per point details.
	DebugLevel              // DebugLevel is used for render internals (extent, domain, ticks).
	InfoLevel               // InfoLevel is used for files written and datasets stored.
	WarnLevel               // WarnLevel is used for recoverable input problems.
	ErrorLevel              // ErrorLevel is used for failed renders and loads.
	FatalLevel              // FatalLevel logs and exits; only the CLI uses it.
	NoLevel                 // NoLevel is used for unleveled output.
)

type Logger interface {
	// Contextual loggers
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}
