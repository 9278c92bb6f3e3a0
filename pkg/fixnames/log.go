package fixnames

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger for diagnostics. Status lines for the
// user go through a Reporter instead.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", "fixnames").
		Logger()
}
