package widget

import (
	"log/slog"
	"os"
)

// Default is LevelInfo, which suppresses the debug messages.
var widgetLogLevel = new(slog.LevelVar)

// Enables debug logging of the widgets state transitions.
func SetVerbose(v bool) {
	if v {
		widgetLogLevel.Set(slog.LevelDebug)
	} else {
		widgetLogLevel.Set(slog.LevelInfo)
	}
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: widgetLogLevel}))
