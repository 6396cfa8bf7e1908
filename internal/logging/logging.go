package logging

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Logger writes one JSON object per line. Every entry carries "ts" (RFC3339Nano
// in the configured location) and "level"; callers supply the remaining fields.
type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	loc *time.Location
}

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{enc: json.NewEncoder(w), loc: loc}
}

// Default logs to stdout.
func Default(loc *time.Location) *Logger {
	return New(os.Stdout, loc)
}

// Log writes entry as is, adding ts and a level when absent.
func (l *Logger) Log(entry map[string]any) {
	if l == nil {
		return
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		entry["level"] = "info"
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

// Info logs msg with fields at info level.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.Log(withMsg("info", msg, fields))
}

// Error logs msg with fields and the error text at error level.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	entry := withMsg("error", msg, fields)
	if err != nil {
		entry["error"] = err.Error()
	}
	l.Log(entry)
}

// ErrorContext is Error plus the request_id and trace_id carried by ctx.
func (l *Logger) ErrorContext(ctx context.Context, msg string, err error, fields map[string]any) {
	entry := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		entry[k] = v
	}
	if id := RequestIDFromContext(ctx); id != "" {
		entry["request_id"] = id
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		entry["trace_id"] = sc.TraceID().String()
	}
	l.Error(msg, err, entry)
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withMsg(level, msg string, fields map[string]any) map[string]any {
	entry := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		entry[k] = v
	}
	entry["level"] = level
	entry["msg"] = msg
	return entry
}
