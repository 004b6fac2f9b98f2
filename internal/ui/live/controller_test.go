package live

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"valuesquiz/internal/testutil"
)

// TestRunQuitsOnInput verifies the program exits when the user quits.
func TestRunQuitsOnInput(t *testing.T) {
	ctx := testutil.Context(t, 5*time.Second)
	var out bytes.Buffer
	sess := testutil.NewSession(t, "Honesty")
	err := Run(ctx, sess, Options{NoColor: true, Input: strings.NewReader("q"), Output: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Honesty") {
		t.Fatalf("expected rendered output, got %q", out.String())
	}
}

// TestRunStopsOnCancel verifies cancellation ends the program.
func TestRunStopsOnCancel(t *testing.T) {
	parent := testutil.Context(t, 5*time.Second)
	ctx, cancel := context.WithCancel(parent)
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	errs := make(chan error, 1)
	go func() {
		errs <- Run(ctx, testutil.NewSession(t, "A"), Options{NoColor: true, Input: reader, Output: io.Discard})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errs:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-parent.Done():
		t.Fatalf("run did not stop after cancel")
	}
}
