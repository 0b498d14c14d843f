package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, ParseLevel(tt.in), tt.want, "input %q", tt.in)
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer

	logger, closeFn := SetupLogger(Options{Level: slog.LevelWarn, Output: &buf})
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "column", "age")

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, "msg=shown"))
	assert.Assert(t, strings.Contains(out, "column=age"))
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	assert.Assert(t, m.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(m).With("run_id", "r1").WithGroup("stage")
	logger.Info("progress", "name", "impute")
	logger.Error("failed", "name", "outliers")

	assert.Assert(t, strings.Contains(debugBuf.String(), "msg=progress"))
	assert.Assert(t, strings.Contains(debugBuf.String(), "run_id=r1"))
	assert.Assert(t, strings.Contains(debugBuf.String(), "stage.name=impute"))
	assert.Assert(t, !strings.Contains(errorBuf.String(), "msg=progress"))
	assert.Assert(t, strings.Contains(errorBuf.String(), "msg=failed"))
}
