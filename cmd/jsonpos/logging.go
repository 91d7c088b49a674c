package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// newLogger returns a text logger writing to w. The level is Info unless
// JSONPOS_DEBUG is set to a true value.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := strconv.ParseBool(os.Getenv("JSONPOS_DEBUG")); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
