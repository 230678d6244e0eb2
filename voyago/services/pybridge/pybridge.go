// Package pybridge runs the Python AI scripts and turns each run into
// exactly one result, whatever order the timer and the process finish in.
package pybridge

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"voyago/voyago/utils/logging"

	"go.uber.org/zap"
)

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeTimeout
	OutcomeStartFailed
	OutcomeExitError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeStartFailed:
		return "start_failed"
	case OutcomeExitError:
		return "exit_error"
	}
	return "unknown"
}

// Result is the single outcome of one script run. Stderr is kept for
// the error log only; callers must not forward it to clients.
type Result struct {
	Outcome Outcome
	Stdout  []byte
	Stderr  string
}

type Runner struct {
	pythonBin string
}

func NewRunner(pythonBin string) *Runner {
	return &Runner{pythonBin: pythonBin}
}

// Run starts the script with positional args and blocks until the
// process exits, the timeout fires, or ctx is cancelled. The select
// below is the single decision point: whichever event wins becomes the
// result and the process is killed on the losing paths. The kill paths
// must not wait on cmd.Wait before returning: Wait also waits for the
// stdout/stderr pipes to close, and a grandchild forked by the script
// can hold them open long after the direct child is dead. The late
// exit is reaped in the background and discarded. One call, one result.
func (r *Runner) Run(ctx context.Context, timeout time.Duration, script string, args ...string) Result {
	defer logging.LogDuration(ctx, "pybridge_run")()

	cmd := exec.Command(r.pythonBin, append([]string{script}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		logging.ErrorLogger.Error("script start failed",
			zap.String("script", script), zap.Error(err))
		return Result{Outcome: OutcomeStartFailed}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		cmd.Process.Kill()
		go func() { <-done }()
		logging.ErrorLogger.Error("script timed out",
			zap.String("script", script), zap.Duration("timeout", timeout))
		return Result{Outcome: OutcomeTimeout}
	case <-ctx.Done():
		cmd.Process.Kill()
		go func() { <-done }()
		return Result{Outcome: OutcomeTimeout}
	case err := <-done:
		if err != nil {
			logging.ErrorLogger.Error("script exited with error",
				zap.String("script", script),
				zap.String("stderr", stderr.String()),
				zap.Error(err))
			return Result{Outcome: OutcomeExitError, Stderr: stderr.String()}
		}
		return Result{Outcome: OutcomeOK, Stdout: stdout.Bytes(), Stderr: stderr.String()}
	}
}
