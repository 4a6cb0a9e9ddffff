package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestShouldTraceRequest_HealthPaths(t *testing.T) {
	paths := []string{"/healthz", "/health", "/livez", "/readyz", " /healthz ", "/HEALTHZ"}
	for _, path := range paths {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
}

func TestShouldTraceRequest_APIPaths(t *testing.T) {
	paths := []string{
		"/v1/seasons/2024-25/rounds/3/facts",
		"/v1/seasons/2024-25/rounds/3/context",
		"/v1/matches/epl-2425-r3-mci-ars/facts",
		"/v1/seasons/2024-25/teams/form/latest",
		"/v1/summaries/round",
		"/healthz/extra",
	}
	for _, path := range paths {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRequestTracing_SkipsHealthzAndTracesRoundContext(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(t.Context())
	})

	handler := RequestTracing("match-recap-api", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, target := range []string{"/healthz", "/v1/seasons/2024-25/rounds/3/context"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: unexpected status %d", target, rec.Code)
		}
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		names := make([]string, 0, len(ended))
		for _, s := range ended {
			names = append(names, s.Name())
		}
		t.Fatalf("expected one server span, got %v", names)
	}
	if got := ended[0].Name(); got != "GET /v1/seasons/2024-25/rounds/3/context" {
		t.Fatalf("unexpected span name %q", got)
	}
}
