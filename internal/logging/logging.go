// Package logging provides the diagnostics sink shared by the parser and the
// trimming pipeline. It is built on log/slog and configured once in main.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// LevelSilent is above every level the tool emits, used by --quiet.
const LevelSilent = slog.Level(12)

// Logger is the diagnostics sink passed to every component.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	// Exception logs an unexpected failure such as a process that could
	// not be launched.
	Exception(err error, msg string, args ...any)
}

// LevelFromFlags maps the CLI verbosity flags to a level. The default is
// error; --debug wins over everything else.
func LevelFromFlags(quiet, verbose, debug bool) slog.Level {
	lvl := slog.LevelError
	if verbose {
		lvl = slog.LevelInfo
	}
	if quiet {
		lvl = LevelSilent
	}
	if debug {
		lvl = slog.LevelDebug
	}
	return lvl
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return &slogLogger{logger: slog.New(handler)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(io.Discard, LevelSilent)
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *slogLogger) Exception(err error, msg string, args ...any) {
	args = append(args, "error", err)
	if l.logger.Enabled(context.Background(), slog.LevelDebug) {
		// pkg/errors values print their stack with %+v
		args = append(args, "trace", fmt.Sprintf("%+v", err))
	}
	l.log(slog.LevelError, msg, args...)
}

// log records the caller of the exported method as the source location.
func (l *slogLogger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}
