// Package logging configures the slog handler used by the command line.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
	"golang.org/x/term"
)

var (
	errorStyle = color.New(color.FgRed)
	infoStyle  = color.New(color.FgGreen)
)

// CLIHandler writes one line per record: the message followed by key=value pairs.
type CLIHandler struct {
	mu       *sync.Mutex
	writer   io.Writer
	level    slog.Leveler
	useColor bool
	prefix   string
	attrs    []slog.Attr
}

// NewCLIHandler returns a handler writing to w at the given level.
func NewCLIHandler(w io.Writer, level slog.Leveler, useColor bool) *CLIHandler {
	return &CLIHandler{
		mu:       &sync.Mutex{},
		writer:   w,
		level:    level,
		useColor: useColor,
	}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(a))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	if h.useColor {
		if r.Level >= slog.LevelError {
			msg = errorStyle.Render(msg)
		} else {
			msg = infoStyle.Render(msg)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	next := *h
	if h.prefix != "" {
		name = h.prefix + "." + name
	}
	next.prefix = name
	return &next
}

// Setup installs a CLI handler on stderr as the default logger. Color is used
// only when requested and stderr is a terminal.
func Setup(level string, useColor bool) *slog.Logger {
	useColor = useColor && term.IsTerminal(int(os.Stderr.Fd()))
	logger := slog.New(NewCLIHandler(os.Stderr, ParseLevel(level), useColor))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level name to slog.Level. Unknown names map to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve())
}
