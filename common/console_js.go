//go:build js
// +build js

package common

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/rs/zerolog"
)

// consoleWriter forwards each formatted log line to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, " WRN "):
		method = "warn"
	case strings.Contains(line, " ERR "):
		method = "error"
	}
	js.Global.Get("console").Call(method, line)
	return len(p), nil
}

// UseBrowserConsole routes all subsequently created loggers to the console.
func UseBrowserConsole() {
	SetLogOutput(zerolog.ConsoleWriter{
		Out:        consoleWriter{},
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	})
}
