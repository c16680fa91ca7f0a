package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/harjula/fitadvisor/internal/logging"
)

func TestNewLoggerAttachesContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelInfo)

	ctx := logging.WithAttrs(context.Background(), slog.String("trace_id", "abc123"))
	logger.InfoContext(ctx, "handling request")

	got := buf.String()
	if !strings.Contains(got, "trace_id=abc123") {
		t.Errorf("log output %q missing the context attribute", got)
	}
	if !strings.Contains(got, "handling request") {
		t.Errorf("log output %q missing the message", got)
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelWarn)

	logger.Info("too quiet")

	if buf.Len() != 0 {
		t.Errorf("log output = %q, want nothing below the configured level", buf.String())
	}
}
