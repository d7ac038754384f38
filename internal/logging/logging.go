// Package logging builds the zerolog loggers used for diagnostics.
//
// Diagnostic lines never go to stdout: the CLI prints results there and the
// server speaks its protocol there.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-detect/internal/config"
)

// Tag identifies this program in syslog and in the component field.
const Tag = "edge-detect"

// New returns a JSON logger writing to w at the given level, with timestamps.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", Tag).
		Logger()
}

// NewConsole returns a human-readable logger on stderr.
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return New(consoleWriter, level)
}

// ParseLevel maps a level name to a zerolog level. An empty name means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Open builds the logger selected by sink. The returned closer releases the
// sink's resources and is never nil.
func Open(sink config.LogSink, levelName string) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	switch sink {
	case config.SinkSyslog:
		w, closer, err := openSyslog()
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		return New(w, level), closer, nil
	case config.SinkStderr, "":
		return NewConsole(level), nopCloser{}, nil
	default:
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("unknown log sink %q", sink)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
