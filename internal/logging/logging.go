// Package logging builds the diagnostics logger. The terminal belongs to the
// game while it runs, so logs only ever go to a file named by SNAKE_LOG.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// EnvVar names the file that receives diagnostics. Unset disables logging.
const EnvVar = "SNAKE_LOG"

func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// FromEnv returns a file logger when SNAKE_LOG is set and a no-op logger
// otherwise. The returned close func is always safe to call.
func FromEnv() (zerolog.Logger, func() error, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}
	return Open(path)
}

func Open(path string) (zerolog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() error { return nil }, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f), f.Close, nil
}
