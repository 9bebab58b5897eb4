package logging_test

import (
	"context"
	"testing"

	"logview/internal/logging"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := logging.WithRequestID(context.Background(), "req-123")
	if id, ok := logging.RequestIDFromContext(ctx); !ok || id != "req-123" {
		t.Fatalf("unexpected request id: %v %v", id, ok)
	}
	fields := logging.ContextFields(ctx)
	if len(fields) != 1 || fields[0].Key != logging.FieldCorrelationID {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestBlankRequestIDPreservesContext(t *testing.T) {
	ctx := context.Background()
	if logging.WithRequestID(ctx, "") != ctx {
		t.Fatal("expected blank id to return the original context")
	}
	if _, ok := logging.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id")
	}
	if logging.WithContext(ctx, nil) == nil {
		t.Fatal("expected nop logger for nil input")
	}
}
