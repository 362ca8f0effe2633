package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/deskpilot/deskpilot/pkg/logger"
	"github.com/deskpilot/deskpilot/pkg/metrics"
	"github.com/deskpilot/deskpilot/pkg/static"
	"go.uber.org/zap"
	"os/exec"
	"time"
)

func NewRunner() *Runner {
	return &Runner{
		log: logger.Named("shell"),
	}
}

// Run spawns args as a child process and waits for it to exit. Operational
// failures (missing binary, non-zero exit, timeout) are never returned as
// errors: they come back inside the ExecutionResult with Success=false. A
// timeout of zero means no deadline beyond the caller's context. On every
// exit path, cancellation included, the child is killed and reaped.
func (r *Runner) Run(ctx context.Context, args []string, timeout time.Duration) ExecutionResult {
	if len(args) == 0 {
		return ExecutionResult{
			Success:    false,
			ReturnCode: static.SPAWN_FAILURE_CODE,
			Stderr:     "empty command",
		}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Hard stop for children that ignore the kill signal, so Wait can never
	// hang past cancellation and no process is left unreaped.
	cmd.WaitDelay = 10 * time.Second

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started).Seconds()

	result := ExecutionResult{
		Stdout:        stdout.String(),
		Stderr:        stderr.String(),
		ExecutionTime: elapsed,
	}

	switch {
	case err == nil:
		result.Success = true
		result.ReturnCode = 0
	case ctx.Err() != nil && timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.ReturnCode = static.TIMEOUT_CODE
		result.Stderr = fmt.Sprintf("command timed out after %s", timeout)

		metrics.CommandTimeouts.Increment(args[0])
	default:
		var exitErr *exec.ExitError

		if errors.As(err, &exitErr) {
			result.ReturnCode = exitErr.ExitCode()
		} else {
			// Spawn failure: the binary was never executed.
			result.ReturnCode = static.SPAWN_FAILURE_CODE
			result.Stderr = err.Error()
		}
	}

	metrics.Commands.Increment(args[0], metrics.Outcome(result.Success))
	metrics.CommandDuration.Observe(elapsed, args[0])

	r.log.Debug("command executed",
		zap.Strings("args", args),
		zap.Bool("success", result.Success),
		zap.Int("code", result.ReturnCode),
		zap.Float64("seconds", elapsed),
	)

	return result
}

// Start spawns args without waiting for it to finish, for long-lived
// desktop processes like a browser. The result only reflects whether the
// spawn succeeded; the child is reaped by a background goroutine so no
// zombie is left behind.
func (r *Runner) Start(args []string) ExecutionResult {
	if len(args) == 0 {
		return ExecutionResult{
			Success:    false,
			ReturnCode: static.SPAWN_FAILURE_CODE,
			Stderr:     "empty command",
		}
	}

	cmd := exec.Command(args[0], args[1:]...)

	started := time.Now()
	err := cmd.Start()
	elapsed := time.Since(started).Seconds()

	if err != nil {
		metrics.Commands.Increment(args[0], metrics.Outcome(false))

		return ExecutionResult{
			Success:       false,
			ReturnCode:    static.SPAWN_FAILURE_CODE,
			Stderr:        err.Error(),
			ExecutionTime: elapsed,
		}
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			r.log.Debug("detached command exited", zap.Strings("args", args), zap.Error(err))
		}
	}()

	metrics.Commands.Increment(args[0], metrics.Outcome(true))

	r.log.Debug("command started", zap.Strings("args", args), zap.Int("pid", cmd.Process.Pid))

	return ExecutionResult{
		Success:       true,
		ReturnCode:    0,
		ExecutionTime: elapsed,
	}
}

// RunLine tokenizes line and runs it.
func (r *Runner) RunLine(ctx context.Context, line string, timeout time.Duration) ExecutionResult {
	return r.Run(ctx, Tokenize(line), timeout)
}
