package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls debug logging for the widget layer. Default is
// LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the toolkit.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiLogger is the logger for widget-layer debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
