package testutil

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestContextDefaultsTimeout(t *testing.T) {
	ctx := Context(t, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > DefaultTimeout {
		t.Fatalf("expected deadline within %s, got %s", DefaultTimeout, remaining)
	}
}

func TestContextExpiresWithCause(t *testing.T) {
	ctx := Context(t, 20*time.Millisecond)
	select {
	case <-ctx.Done():
	case <-time.After(DefaultTimeout):
		t.Fatalf("context did not expire")
	}
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", ctx.Err())
	}
	if cause := context.Cause(ctx); cause == nil || !strings.Contains(cause.Error(), t.Name()) {
		t.Fatalf("expected cause naming the test, got %v", cause)
	}
}
