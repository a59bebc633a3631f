// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(cfg.LogLevel)                   // stderr, colored
//	logging.SetupWithWriter(w, slog.LevelDebug)   // explicit destination
//
// The level normally comes from the LOG_LEVEL setting (see internal/config).
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup configures colored logging to stderr at the given level.
func Setup(level slog.Level) {
	SetupWithWriter(os.Stderr, level)
}

// SetupWithWriter configures colored logging to w at the given level and
// returns the installed logger.
func SetupWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}

// New builds a tint logger without installing it as the default.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
			NoColor:    !isTerminal(w),
		}),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
