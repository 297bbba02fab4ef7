package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name                  string
		quiet, verbose, debug bool
		want                  slog.Level
	}{
		{"default", false, false, false, slog.LevelError},
		{"verbose", false, true, false, slog.LevelInfo},
		{"quiet", true, false, false, LevelSilent},
		{"debug", false, false, true, slog.LevelDebug},
		{"debug beats quiet", true, false, true, slog.LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromFlags(tt.quiet, tt.verbose, tt.debug))
		})
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelError)

	log.Debug("debug line")
	log.Info("info line")
	log.Error("could not parse line", "line", "xx")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "could not parse line")
	assert.Contains(t, out, "line=xx")
	assert.Contains(t, out, "logging_test.go")
}

func TestLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelSilent)

	log.Error("hidden")
	log.Exception(errors.New("boom"), "hidden too")

	assert.Empty(t, buf.String())
}

func TestLogger_ExceptionTrace(t *testing.T) {
	err := errors.New("exec: \"ffmpeg\": executable file not found in $PATH")

	var errOnly bytes.Buffer
	New(&errOnly, slog.LevelError).Exception(err, "could not launch ffmpeg")
	assert.Contains(t, errOnly.String(), "could not launch ffmpeg")
	assert.Contains(t, errOnly.String(), "executable file not found")
	assert.NotContains(t, errOnly.String(), "trace=")

	var debug bytes.Buffer
	New(&debug, slog.LevelDebug).Exception(err, "could not launch ffmpeg")
	assert.Contains(t, debug.String(), "trace=")
}
