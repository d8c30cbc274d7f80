package util

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger configures the process logger. format "console" switches to the
// human readable writer; anything else logs JSON lines.
func InitLogger(level, format string) {
	var out io.Writer = os.Stdout
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Logger returns the process logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetLoggerOutputForTest redirects the logger to w and returns a restore func.
func SetLoggerOutputForTest(w io.Writer) func() {
	original := logger
	logger = zerolog.New(w).With().Timestamp().Logger()
	return func() { logger = original }
}
