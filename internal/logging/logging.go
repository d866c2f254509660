// Package logging provides the contextual, structured logger used across the
// app. The TUI owns the terminal, so records go to a file or nowhere.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Logger specifies a contextual, structured logger.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

type slogger struct {
	log *slog.Logger
}

// New logs text records to w.
func New(w io.Writer) Logger {
	return &slogger{log: slog.New(slog.NewTextHandler(w, nil))}
}

// Discard drops everything.
func Discard() Logger { return New(io.Discard) }

// Open appends to the file at path, also routing Bubble Tea's own logging
// there. An empty path yields a discarding logger and a nil file.
func Open(path string) (Logger, *os.File, error) {
	if path == "" {
		return Discard(), nil, nil
	}
	f, err := tea.LogToFile(path, "goods")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	return New(f), f, nil
}

func (l *slogger) Info(ctx context.Context, msg string, kv ...any) {
	l.log.InfoContext(ctx, msg, kv...)
}

// Error logs err by its message only; pkg/errors values would otherwise
// print their stack trace.
func (l *slogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	if err != nil {
		kv = append([]any{"error", err.Error()}, kv...)
	}
	l.log.ErrorContext(ctx, msg, kv...)
}
