package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateTraceID(t *testing.T) {
	id := generateTraceID()
	if len(id) != 32 {
		t.Errorf("trace ID should be 32 chars, got %d", len(id))
	}
}

func TestGenerateSpanID(t *testing.T) {
	id := generateSpanID()
	if len(id) != 16 {
		t.Errorf("span ID should be 16 chars, got %d", len(id))
	}
}

func TestIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateTraceID()
		if seen[id] {
			t.Error("generated duplicate trace ID")
		}
		seen[id] = true
	}
}

func TestNewChild(t *testing.T) {
	parent := New()
	child := NewChild(parent)

	if child.TraceID != parent.TraceID {
		t.Error("child should inherit trace ID")
	}
	if child.SpanID == parent.SpanID {
		t.Error("child should have new span ID")
	}
	if child.ParentSpanID != parent.SpanID {
		t.Error("child's parent should be parent's span ID")
	}
}

func TestContextRoundTrip(t *testing.T) {
	tc := New()
	ctx := WithContext(context.Background(), tc)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("trace context not found")
	}
	if got.TraceID != tc.TraceID {
		t.Errorf("TraceID = %q, want %q", got.TraceID, tc.TraceID)
	}
}

func TestEnsureContext(t *testing.T) {
	ctx, tc := EnsureContext(context.Background())
	if tc.TraceID == "" {
		t.Error("EnsureContext should create a trace ID")
	}

	ctx2, tc2 := EnsureContext(ctx)
	if tc2.TraceID != tc.TraceID {
		t.Error("EnsureContext should reuse existing context")
	}
	if ctx2 != ctx {
		t.Error("EnsureContext should not replace an existing context")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "step")
	if span.Ctx.TraceID == "" {
		t.Error("span should have a trace ID")
	}
	span.End()
	if span.Duration() < 0 {
		t.Error("duration should be non-negative")
	}

	_, child := StartSpan(ctx, "inner")
	if child.Ctx.TraceID != span.Ctx.TraceID {
		t.Error("child span should inherit trace ID")
	}
}

func TestMiddleware(t *testing.T) {
	var got Context
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/state", nil)
	req.Header.Set(TraceIDKey, "abc123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.TraceID != "abc123" {
		t.Errorf("TraceID = %q, want propagated %q", got.TraceID, "abc123")
	}
	if got.SpanID == "" {
		t.Error("middleware should mint a span ID")
	}
}
