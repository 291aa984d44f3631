package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/srmist/campus-chat-go/internal/ctxutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Warn("something odd")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warning", entries[0]["level"])
	assert.Equal(t, "something odd", entries[0]["message"])
	assert.Contains(t, entries[0], "timestamp")
	assert.NotContains(t, entries[0], "msg")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	log.Error("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.WithModule("fees").
		WithRequestID("req-1").
		WithError(errors.New("boom")).
		WithField("course", "cse").
		WithFields(map[string]any{"years": 4}).
		Debugf("resolved %s", "cse")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "fees", e["module"])
	assert.Equal(t, "req-1", e["request_id"])
	assert.Equal(t, "boom", e["error"])
	assert.Equal(t, "cse", e["course"])
	assert.InDelta(t, 4, e["years"], 0)
	assert.Equal(t, "resolved cse", e["message"])
}

func TestLogger_ContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	ctx := ctxutil.WithRequestID(context.Background(), "req-abc")
	ctx = ctxutil.WithClientIP(ctx, "10.1.2.3")
	ctx = ctxutil.WithLanguage(ctx, "ta")
	log.InfoContext(ctx, "chat resolved")
	log.Info("no context")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-abc", entries[0]["request_id"])
	assert.Equal(t, "10.1.2.3", entries[0]["client_ip"])
	assert.Equal(t, "ta", entries[0]["lang"])
	assert.NotContains(t, entries[1], "request_id")
}

func TestLogger_ShutdownWithoutRemote(t *testing.T) {
	log := New("info")
	assert.NoError(t, log.Shutdown(context.Background()))
	assert.Zero(t, log.Dropped())

	var nilLogger *Logger
	assert.NoError(t, nilLogger.Shutdown(context.Background()))
}
