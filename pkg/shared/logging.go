package shared

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger at the given level. A nil writer
// logs to stderr.
func NewLogger(level string, writer io.Writer) (zerolog.Logger, error) {
	parsed := zerolog.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		value, err := zerolog.ParseLevel(strings.ToLower(trimmed))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		parsed = value
	}

	if writer == nil {
		writer = os.Stderr
	}
	output := zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: true}

	return zerolog.New(output).Level(parsed).With().Timestamp().Logger(), nil
}
