package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds a zerolog logger writing to out.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic)
//   - format: "json" for machine output, "pretty" for human-readable output
//
// The CLI passes os.Stderr so diagnostics never interleave with the prompts
// and the outcome printed on stdout.
func Setup(level, format string, out io.Writer) zerolog.Logger {
	writer := out

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
