package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-logr/logr"
)

// newLogger builds a slog handler writing to w and exposes it as a logr.Logger.
// level is any slog level name (debug, info, warn, error); format is text or json.
// Debug level enables the solver's V(1) messages.
func newLogger(w io.Writer, level, format string) (logr.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return logr.Logger{}, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return logr.Logger{}, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}

	return logr.FromSlogHandler(h), nil
}
