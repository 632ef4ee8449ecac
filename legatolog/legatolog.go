// Package legatolog provides the single logging sink the rest of legato
// logs through, so construction-time graph and runtime diagnostics go
// through one configured logger instead of every package importing
// charmbracelet/log directly.
package legatolog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "legato",
})

// SetOutput redirects all legato log output, primarily for tests that want
// to silence it or capture it.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel adjusts the minimum logged level.
func SetLevel(l log.Level) {
	logger.SetLevel(l)
}

// Debug logs a construction-time diagnostic (graph mutation, cache
// invalidation). Never called from Runtime.Step's hot path.
func Debug(msg interface{}, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Warn logs a recoverable but noteworthy condition, such as a sample slot
// being read before it was ever loaded.
func Warn(msg interface{}, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

func init() {
	logger.SetLevel(log.WarnLevel)
}
