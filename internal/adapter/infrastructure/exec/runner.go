// Package exec provides the host command runner adapter implementation.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/port"
)

// DefaultTimeout bounds a single command when the caller's context has no deadline.
const DefaultTimeout = 10 * time.Second

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct {
	timeout time.Duration
	euid    func() int
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new command runner adapter.
func NewRunnerAdapter(timeout time.Duration) *RunnerAdapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RunnerAdapter{timeout: timeout, euid: os.Geteuid}
}

// Run executes a command and returns its combined output.
func (r *RunnerAdapter) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return r.run(ctx, name, args)
}

// RunPrivileged executes a command as root, going through non-interactive sudo
// when the process is not already privileged.
func (r *RunnerAdapter) RunPrivileged(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.euid() == 0 {
		return r.run(ctx, name, args)
	}
	return r.run(ctx, "sudo", append([]string{"-n", name}, args...))
}

func (r *RunnerAdapter) run(ctx context.Context, name string, args []string) ([]byte, error) {
	logger := logging.WithComponent("exec").WithField("command", name+" "+strings.Join(args, " "))

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var out bytes.Buffer
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	start := time.Now()
	err := cmd.Run()
	logger = logger.WithField("duration", time.Since(start).Round(time.Millisecond))
	if err != nil {
		logger.WithError(err).Debug("Command failed")
		if ctx.Err() != nil {
			return out.Bytes(), fmt.Errorf("command %s timed out: %w", name, ctx.Err())
		}
		return out.Bytes(), fmt.Errorf("command %s failed: %w: %s", name, err, strings.TrimSpace(out.String()))
	}
	logger.Debug("Command completed")
	return out.Bytes(), nil
}
