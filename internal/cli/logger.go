package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the CLI logger. Verbose enables debug output, quiet
// silences everything, and the default only reports warnings.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "twcontrast",
		Output: out,
		Level:  level,
	})
}
