package reqctx_test

import (
	"context"
	"testing"

	"github.com/ErlanBelekov/accounts/internal/reqctx"
	"github.com/google/uuid"
)

func TestRequestID_RoundTrip(t *testing.T) {
	id := reqctx.NewRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewRequestID() = %q is not a UUID: %v", id, err)
	}

	ctx := reqctx.WithRequestID(context.Background(), id)
	if got := reqctx.RequestID(ctx); got != id {
		t.Errorf("RequestID = %q, want %q", got, id)
	}
	if got := reqctx.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID on empty ctx = %q, want empty", got)
	}
}

func TestUserID_RoundTrip(t *testing.T) {
	if _, ok := reqctx.UserID(context.Background()); ok {
		t.Fatal("empty ctx should carry no user id")
	}

	ctx := reqctx.WithUserID(context.Background(), 42)
	id, ok := reqctx.UserID(ctx)
	if !ok || id != 42 {
		t.Errorf("UserID = (%d, %v), want (42, true)", id, ok)
	}
}
