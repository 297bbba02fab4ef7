package ffmpeg

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// Outcome is what a finished invocation reports. Err is set only when the
// process could not be started; its output is never inspected.
type Outcome struct {
	ExitCode int
	Err      error
}

// Success reports whether the process started and exited with status zero
func (o Outcome) Success() bool {
	return o.Err == nil && o.ExitCode == 0
}

// Runner runs a command synchronously
type Runner interface {
	Run(cmd Command) Outcome
}

// ExecRunner runs commands as child processes. There is no timeout: a hung
// ffmpeg blocks the caller.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that streams the child's output to w
func NewExecRunner(w io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: w, Stderr: w}
}

func (r *ExecRunner) Run(c Command) Outcome {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return Outcome{ExitCode: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Outcome{ExitCode: exitErr.ExitCode()}
	}
	return Outcome{ExitCode: -1, Err: errors.Wrapf(err, "failed to launch %s", c.Path)}
}
