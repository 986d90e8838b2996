package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Parse the level name, empty string means info
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Structured logger writing JSON lines to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Logger for the given file, nothing gets logged if path is empty.
// The returned close function is never nil
func Open(path string, level string) (zerolog.Logger, func() error, error) {
	nop := func() error { return nil }

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nop, err
	}

	if path == "" {
		return zerolog.Nop(), nop, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nop, fmt.Errorf("open log file: %w", err)
	}
	return New(f, lvl), f.Close, nil
}
