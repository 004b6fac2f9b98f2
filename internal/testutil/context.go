package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// DefaultTimeout bounds UI loops driven from tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends or timeout elapses,
// whichever comes first. A test deadline shortens the timeout by a second so
// the failure is reported by the test rather than the runner.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		deadline, ok := dt.Deadline()
		if remaining := time.Until(deadline) - time.Second; ok && remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	cause := fmt.Errorf("%s: exceeded %s", t.Name(), timeout)
	ctx, cancel := context.WithTimeoutCause(context.Background(), timeout, cause)
	t.Cleanup(cancel)
	return ctx
}
