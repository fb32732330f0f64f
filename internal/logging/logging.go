// Package logging configures the process-wide structured logger.
package logging

import (
	"os"

	"github.com/phuslu/log"
)

// Setup replaces log.DefaultLogger. Terminals get colored console output,
// everything else gets one JSON object per line on stderr.
func Setup(level string) {
	lvl := log.ParseLevel(level)

	if log.IsTerminal(os.Stderr.Fd()) {
		log.DefaultLogger = log.Logger{
			Level:      lvl,
			Caller:     1,
			TimeFormat: "15:04:05",
			Writer: &log.ConsoleWriter{
				ColorOutput:    true,
				EndWithMessage: true,
			},
		}
		return
	}

	log.DefaultLogger = log.Logger{
		Level:  lvl,
		Writer: &log.IOWriter{Writer: os.Stderr},
	}
}
