package rips

import (
	"io"
	"log/slog"
)

// orDiscard returns l, or a logger that throws everything away if l is
// nil. Driver functions take a logger as an explicit parameter rather
// than reaching for a package-level default, so callers that don't care
// about logging can simply pass nil.
func orDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
