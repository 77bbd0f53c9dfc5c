package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultToolTimeout bounds a single invocation of an external tool.
const DefaultToolTimeout = 30 * time.Second

// CommandRunner abstracts execution of the external binutils the reroute
// step depends on.
type CommandRunner interface {
	// Run executes name with args and returns its stdout. A non-zero exit
	// status is reported as an error that includes the tool's stderr.
	Run(ctx context.Context, name string, args ...string) (stdout string, err error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner. A non-positive
// timeout falls back to DefaultToolTimeout.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	if timeout <= 0 {
		timeout = DefaultToolTimeout
	}

	return &LocalCommandRunner{
		timeout: timeout,
	}
}

// Run executes the command under the runner's timeout.
func (a *LocalCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - tool name comes from configuration, arguments are file paths
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running tool", "tool", name, "args", args)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("%s: %w", name, err)
		}

		return stdout.String(), fmt.Errorf("%s: %w: %s", name, err, msg)
	}

	return stdout.String(), nil
}
