// Package log is the logging facade of tempconv. Records go through a
// single [slog.Logger] whose handler and level may be swapped at runtime.
package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type Handler = slog.Handler

var DiscardHandler = slog.DiscardHandler

var level = new(slog.LevelVar)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, options()))

func options() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level}
}

// SetLogLevel sets the minimum level of records that are logged.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the current minimum level.
func LogLevel() Level {
	return Level(level.Level())
}

// SetHandler sets the default logger's handler to the one given.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// SetTextHandler sets the default logger to write logfmt records to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, options()))
}

// SetJSONHandler sets the default logger to write JSON records to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, options()))
}

// SetTintHandler sets the default logger to write colored records to w.
func SetTintHandler(w io.Writer, color bool) {
	SetHandler(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}))
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs msg at [LevelError] with err as the "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}
