package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates the CLI logger. Level names follow hclog ("trace",
// "debug", "info", "warn", "error", "off"); "off" discards all output.
func NewLogger(level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	if lvl == hclog.Off {
		output = io.Discard
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "deskgen",
		Level:  lvl,
		Output: output,
	})
}
