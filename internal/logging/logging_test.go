package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, time.UTC)

	l.Info("server_started", map[string]any{"port": "8080"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "server_started", lines[0]["msg"])
	assert.Equal(t, "8080", lines[0]["port"])

	ts, ok := lines[0]["ts"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	l.Error("upstream_failed", errors.New("boom"), nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["error"])
}

func TestLogger_ErrorContextAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, time.UTC)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = WithRequestID(ctx, "req-1")

	l.ErrorContext(ctx, "upstream_failed", errors.New("boom"), nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", lines[0]["trace_id"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
}

func TestLogger_KeepsExplicitLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, time.UTC)

	l.Log(map[string]any{"level": "warn", "msg": "config_invalid"})

	lines := decodeLines(t, &buf)
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("noop", nil) })
}
