package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/javiermolinar/tabula/internal/logx"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "tabula-debug.log"

var (
	debugLog  = logx.Discard()
	debugFile *os.File
)

// InitDebugLogger routes TUI debug events to DebugLogPath when enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = logx.Discard()
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = logx.New(f, true).With("component", "tui")
	debugLog.Debug("debug start", "log_file", DebugLogPath)
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Debug("debug end")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = logx.Discard()
}

// DebugLogger returns the logger the TUI writes debug events to.
func DebugLogger() pslog.Logger {
	return debugLog
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("key press", "key", msg.String())
}

// LogMouse logs a mouse event.
func LogMouse(msg tea.MouseMsg) {
	debugLog.Debug("mouse", "event", msg.String(), "x", msg.X, "y", msg.Y)
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	debugLog.Debug("mode change", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(pos Position, reason string) {
	debugLog.Debug("cursor move", "row", pos.Row, "col", pos.Col, "reason", reason)
}

// LogDrag logs a drag lifecycle event.
func LogDrag(event string, kv ...any) {
	debugLog.Debug("drag "+event, kv...)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Error("error", "context", context, "err", err)
}
