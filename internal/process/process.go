// Package process starts external programs: blocking runs whose output is
// captured, and detached launches that are not waited for.
package process

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// Result is the outcome of a blocking run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs a program to completion and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Launcher starts a program without waiting for it to exit.
type Launcher interface {
	Start(name string, args ...string) error
}

// Exec implements Runner and Launcher with os/exec.
type Exec struct{}

// Run executes name with args and waits for it. A program that ran and
// exited with a non-zero status is not an error: the status is reported in
// Result.ExitCode. Errors are returned when the program could not be started
// or ctx ended first.
func (Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, errors.Wrapf(ctxErr, "running %s", name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		res.ExitCode = -1
		return res, errors.Wrapf(err, "running %s", name)
	}
	return res, nil
}

// Start launches name with args in its own process group and returns once
// the process exists. The child is reaped in the background.
func (Exec) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", name)
	}

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
