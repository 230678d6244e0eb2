package pybridge

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voyago/voyago/utils/logging"
)

// --- Helpers ---

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func newTestRunner(t *testing.T) *Runner {
	logging.InitNopLogger() // ensures loggers aren't nil
	return NewRunner("/bin/sh")
}

func TestRunFastExit(t *testing.T) {
	r := newTestRunner(t)
	script := writeScript(t, `echo '{"success": true, "data": []}'`)

	res := r.Run(context.Background(), 5*time.Second, script)
	if res.Outcome != OutcomeOK {
		t.Fatalf("expected OutcomeOK, got %v", res.Outcome)
	}
	if !strings.Contains(string(res.Stdout), `"success": true`) {
		t.Errorf("unexpected stdout: %q", res.Stdout)
	}
}

func TestRunPassesPositionalArgs(t *testing.T) {
	r := newTestRunner(t)
	script := writeScript(t, `echo "$1|$2"`)

	res := r.Run(context.Background(), 5*time.Second, script, "Japan", "10")
	if res.Outcome != OutcomeOK {
		t.Fatalf("expected OutcomeOK, got %v", res.Outcome)
	}
	if got := strings.TrimSpace(string(res.Stdout)); got != "Japan|10" {
		t.Errorf("expected args echoed back, got %q", got)
	}
}

func TestRunTimeoutKillsProcess(t *testing.T) {
	r := newTestRunner(t)
	script := writeScript(t, `sleep 10; echo '{"success": true}'`)

	start := time.Now()
	res := r.Run(context.Background(), 100*time.Millisecond, script)
	if res.Outcome != OutcomeTimeout {
		t.Fatalf("expected OutcomeTimeout, got %v", res.Outcome)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("run was not killed promptly, took %v", elapsed)
	}
	if len(res.Stdout) != 0 {
		t.Errorf("timed-out run must not surface stdout, got %q", res.Stdout)
	}
}

func TestRunTimeoutNotDelayedByGrandchild(t *testing.T) {
	// The script backgrounds a long-lived grandchild that inherits the
	// stdout pipe and survives the kill of the direct child. The
	// timeout result must still come back at the deadline, not when the
	// orphan finally lets go of the pipe.
	r := newTestRunner(t)
	script := writeScript(t, `(sleep 8; echo late) & sleep 10`)

	start := time.Now()
	res := r.Run(context.Background(), 200*time.Millisecond, script)
	if res.Outcome != OutcomeTimeout {
		t.Fatalf("expected OutcomeTimeout, got %v", res.Outcome)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout result delayed by orphaned grandchild, took %v", elapsed)
	}
}

func TestRunFastExitBeatsTimer(t *testing.T) {
	// A quick exit must win the race even with a timeout barely ahead.
	r := newTestRunner(t)
	script := writeScript(t, `echo ok`)

	for i := 0; i < 20; i++ {
		res := r.Run(context.Background(), 500*time.Millisecond, script)
		if res.Outcome != OutcomeOK {
			t.Fatalf("iteration %d: expected OutcomeOK, got %v", i, res.Outcome)
		}
	}
}

func TestRunNonzeroExit(t *testing.T) {
	r := newTestRunner(t)
	script := writeScript(t, `echo "boom" >&2; exit 1`)

	res := r.Run(context.Background(), 5*time.Second, script)
	if res.Outcome != OutcomeExitError {
		t.Fatalf("expected OutcomeExitError, got %v", res.Outcome)
	}
	if !strings.Contains(res.Stderr, "boom") {
		t.Errorf("expected stderr captured for diagnostics, got %q", res.Stderr)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	logging.InitNopLogger()
	r := NewRunner("/nonexistent/python3")

	res := r.Run(context.Background(), 5*time.Second, "whatever.py")
	if res.Outcome != OutcomeStartFailed {
		t.Fatalf("expected OutcomeStartFailed, got %v", res.Outcome)
	}
}

func TestRunContextCancel(t *testing.T) {
	r := newTestRunner(t)
	script := writeScript(t, `sleep 10`)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	res := r.Run(ctx, 30*time.Second, script)
	if res.Outcome != OutcomeTimeout {
		t.Fatalf("expected OutcomeTimeout on cancelled context, got %v", res.Outcome)
	}
}

// Every interleaving must produce exactly one result: Run returning is
// the single response event, so we assert it always returns and never
// panics across the orderings above when raced concurrently.
func TestRunConcurrentInterleavings(t *testing.T) {
	r := newTestRunner(t)
	fast := writeScript(t, `echo '{}'`)
	slow := writeScript(t, `sleep 5`)

	results := make(chan Outcome, 40)
	for i := 0; i < 20; i++ {
		go func() { results <- r.Run(context.Background(), 200*time.Millisecond, fast).Outcome }()
		go func() { results <- r.Run(context.Background(), 200*time.Millisecond, slow).Outcome }()
	}
	for i := 0; i < 40; i++ {
		select {
		case o := <-results:
			if o != OutcomeOK && o != OutcomeTimeout {
				t.Errorf("unexpected outcome %v", o)
			}
		case <-time.After(10 * time.Second):
			t.Fatal("a run never produced its result")
		}
	}
}
