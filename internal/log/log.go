// Package log writes structured logs to a file under the user config
// dir. The TUI owns the terminal, so nothing may print to stderr; with
// CURIO_DEBUG unset every event is dropped.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/flavono123/curio/internal/config"
)

var logger = zerolog.Nop()

// Setup enables file logging when CURIO_DEBUG is set. The returned
// closer is nil when logging stays disabled.
func Setup() (io.Closer, error) {
	if os.Getenv("CURIO_DEBUG") == "" {
		return nil, nil
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return f, nil
}

func Debug() *zerolog.Event { return logger.Debug() }
func Info() *zerolog.Event  { return logger.Info() }
func Warn() *zerolog.Event  { return logger.Warn() }
func Error() *zerolog.Event { return logger.Error() }
