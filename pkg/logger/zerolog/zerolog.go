// Package zerolog backs logger.Logger with github.com/rs/zerolog.
package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures New
type Options struct {
	Level      string
	TimeLayout string
	Colored    bool
	JSON       bool
}

// New builds a zerolog logger writing to out. JSON output is written as is,
// otherwise a console writer with fixed width columns is used.
func New(out io.Writer, opts Options) (*zerolog.Logger, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	if !opts.JSON {
		out = consoleWriter(out, opts)
	}

	l := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &l, nil
}

func consoleWriter(out io.Writer, opts Options) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !opts.Colored,
		TimeFormat: opts.TimeLayout,
	}
	if opts.Colored {
		w.FormatLevel = formatLevel
		w.FormatMessage = formatMessage
		w.FormatCaller = formatCaller
		w.FormatTimestamp = func(i any) string {
			return formatTimestamp(i, opts.TimeLayout)
		}
	}
	return w
}

func formatLevel(i any) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	case zerolog.LevelFatalValue:
		return term.Redf("[FTL]")
	default:
		return term.Whitef("[UNK]")
	}
}

func formatMessage(i any) string {
	const width = 60

	msg, ok := i.(string)
	if !ok || msg == "" {
		return ">"
	}
	if len(msg) < width {
		msg += strings.Repeat(" ", width-len(msg))
	}
	return term.Whitef("> %s", msg)
}

func formatCaller(i any) string {
	name, ok := i.(string)
	if !ok || name == "" {
		return ""
	}
	return term.Yellowf("[%s]", filepath.Base(name))
}

func formatTimestamp(i any, layout string) string {
	s, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}
	if ts, err := time.ParseInLocation(time.RFC3339, s, time.Local); err == nil {
		s = ts.Format(layout)
	}
	return term.Cyanf("[%s]", s)
}
