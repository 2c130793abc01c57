// Package logging holds the slog helpers shared by the build steps.
//
// Components receive a *slog.Logger at construction and never touch the
// global default; a nil logger means "discard". Progress lines meant for the
// person running the build are not logs and go through the builder's report
// writers instead.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns logger, or a discarding logger when it is nil.
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}

// New builds the process logger: text records on w, warnings and up unless
// verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
