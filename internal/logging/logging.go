// Package logging builds the application's zerolog logger. The terminal
// itself belongs to tcell while a game runs, so log output goes to a file
// (or nowhere) instead of stdout.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level writing JSON lines to path.
// An empty path discards all output. The returned closer is nil when
// nothing needs closing.
func New(level, path string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if path == "" {
		return zerolog.Nop(), nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}
