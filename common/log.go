package common

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu     sync.Mutex
	logOutput io.Writer = os.Stderr
	logDebug            = true
)

// SetLogOutput replaces the sink used by loggers created afterwards.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logOutput = w
}

// SetDebug toggles debug-level logging for loggers created afterwards.
func SetDebug(enabled bool) {
	logMu.Lock()
	defer logMu.Unlock()
	logDebug = enabled
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()

	level := zerolog.InfoLevel
	if logDebug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(logOutput).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
