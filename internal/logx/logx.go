// Package logx builds the structured loggers used across tabula.
package logx

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

// New returns a structured logger writing JSON lines to w.
func New(w io.Writer, debug bool) pslog.Logger {
	level := pslog.InfoLevel
	if debug {
		level = pslog.DebugLevel
	}
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      level,
		VerboseFields: true,
	})
}

// Discard returns a logger that drops everything.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
}

// Ctx returns the logger bound to ctx.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithTable annotates the logger with the storage key of the table.
func WithTable(log pslog.Logger, key string) pslog.Logger {
	if key != "" {
		log = log.With("table", key)
	}
	return log
}
