// Package logging constructs the process-wide zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped JSON logger writing to stdout. Unknown level
// strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
