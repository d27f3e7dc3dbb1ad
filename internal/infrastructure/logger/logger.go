package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns the service logger: JSON lines in production, a console
// writer in development.
func New(env string) zerolog.Logger {
	return newWithWriter(env, os.Stdout)
}

func newWithWriter(env string, out io.Writer) zerolog.Logger {
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
