package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// pipeDrainDelay bounds how long Wait blocks on the output pipes after the
// child exits. The CLI may fork helpers that inherit stdout/stderr; without
// this, one leaked descendant keeps Wait blocked for its full lifetime.
const pipeDrainDelay = 3 * time.Second

// Result contains the outcome of a single CLI execution.
type Result struct {
	// ExitCode is the process exit status (0 indicates success).
	ExitCode int

	// Stdout contains the captured standard output.
	Stdout string

	// Stderr contains the captured standard error.
	Stderr string

	// Duration is the execution time from command start to completion.
	Duration time.Duration
}

// Success reports whether the child process exited cleanly.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes built commands as child processes. A non-zero child exit
// is a Result, not an error: the exit code and captured stderr are the
// diagnostic. Errors are reserved for failures to launch or wait on the
// process at all. Either way the failure is terminal for that single call
// only; no retries are attempted, since CLI executions are slow and costly
// and the usual causes (bad file paths) would fail again identically.
type Runner struct {
	// Timeout bounds each execution. Zero means no timeout; a context
	// deadline set by the caller still applies.
	Timeout time.Duration
}

// Run spawns the command with the working directory set to workDir, so the
// CLI resolves relative paths the same way a user in the project would. The
// full process environment is inherited.
func (r *Runner) Run(ctx context.Context, spec CommandSpec, workDir string) (*Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = workDir
	cmd.Env = os.Environ()
	// Own process group, so a timeout kill reaches descendants too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.WaitDelay = pipeDrainDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", spec.Path, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	start := time.Now()
	var err error
	select {
	case <-ctx.Done():
		// Signal the whole group: killing only the direct child leaves
		// its descendants holding the output pipes, and Wait would block
		// until they exit.
		if killErr := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); killErr != nil {
			_ = cmd.Process.Kill()
		}
		<-done // reap the child before returning
		return nil, fmt.Errorf("executing %s: %w", spec.Path, ctx.Err())
	case err = <-done:
	}

	result := &Result{
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrWaitDelay):
			// The child exited cleanly but a leaked descendant held the
			// pipes open past the drain delay; the captured output stands.
		default:
			return nil, fmt.Errorf("executing %s: %w", spec.Path, err)
		}
	}
	return result, nil
}
