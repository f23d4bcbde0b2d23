// Package logging carries the structured logger through contexts.
package logging

import (
	"context"
	"io"

	"pkt.systems/pslog"
)

// Discard returns a logger that writes nowhere.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) pslog.Logger {
	if ctx != nil {
		if logger := pslog.Ctx(ctx); logger != nil {
			return logger
		}
	}
	return Discard()
}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger pslog.Logger) context.Context {
	return pslog.ContextWithLogger(ctx, logger)
}

// New builds a logger writing to w, configured from the environment.
func New(w io.Writer) pslog.Logger {
	return pslog.LoggerFromEnv(pslog.WithEnvWriter(w))
}
