// Package logger builds the zerolog logger used for run diagnostics.
package logger

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w. Unknown levels fall
// back to info. Every line carries the run's id.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !IsTerminal(w)}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// Level maps the debug switch to a level name.
func Level(debug bool) string {
	if debug {
		return zerolog.LevelDebugValue
	}
	return zerolog.LevelInfoValue
}
