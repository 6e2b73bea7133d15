// SPDX-License-Identifier: MIT

package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds an isolated slog.Logger; the global logger is untouched.
// level accepts any slog level name ("debug", "WARN", "info+2", ...);
// anything unparsable logs at info. format "json" selects the JSON handler,
// everything else the text handler.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
