package observability

import (
	"context"
	"testing"
)

func TestFields(t *testing.T) {
	if f := String("tool", "chromakey"); f.Key() != "tool" || f.Value() != "chromakey" {
		t.Fatalf("string field = %q/%v", f.Key(), f.Value())
	}
	if f := Int("pages", 3); f.Key() != "pages" || f.Value() != 3 {
		t.Fatalf("int field = %q/%v", f.Key(), f.Value())
	}
	if f := Int64("bytes", 1<<32); f.Value() != int64(1<<32) {
		t.Fatalf("int64 field = %v", f.Value())
	}
}

func TestNopLoggerWith(t *testing.T) {
	var l Logger = NopLogger{}
	l = l.With(String("tool", "compress"))
	l.Info("ignored")
}

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}
