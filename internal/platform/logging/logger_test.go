package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := sonic.UnmarshalString(line, &out); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return out
}

func TestNew_WritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Writer: &buf, Service: "match-recap-api", Version: "v1"})

	logger.Debug("hidden")
	logger.Warn("round context built", "season", "2024-25", "round", 3, "err", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	entry := decodeLine(t, lines[0])
	if entry["level"] != "WARN" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if entry["msg"] != "round context built" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["service"] != "match-recap-api" || entry["version"] != "v1" {
		t.Fatalf("missing service fields: %v", entry)
	}
	if entry["season"] != "2024-25" || entry["round"] != float64(3) {
		t.Fatalf("unexpected args: %v", entry)
	}
	if entry["err"] != "boom" {
		t.Fatalf("unexpected err field: %v", entry["err"])
	}
	caller, _ := entry["caller"].(string)
	if !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller at call site, got %q", caller)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Writer: &buf})

	traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "summary generated")

	entry := decodeLine(t, strings.TrimSpace(buf.String()))
	if entry["trace_id"] != traceID.String() || entry["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", entry)
	}
}

func TestLogger_MirrorReceivesInheritedArgs(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
		got   []any
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, level.String()+":"+msg)
		got = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := New(Options{Level: LevelInfo, Writer: &bytes.Buffer{}}).With("component", "llm")
	logger.Debug("filtered")
	logger.Error("generate failed", "attempt", 2)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 || calls[0] != "error:generate failed" {
		t.Fatalf("unexpected mirror calls: %v", calls)
	}
	if len(got) != 4 || got[0] != "component" || got[1] != "llm" || got[2] != "attempt" || got[3] != 2 {
		t.Fatalf("unexpected mirrored args: %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %s want %s", raw, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
