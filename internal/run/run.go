// Package run wraps external command execution behind a small interface so
// that package-manager and overlay invocations can be substituted with fakes
// in tests. Production code always uses ExecRunner, which shells out
// synchronously and captures combined output.
package run

import (
	"fmt"
	"os/exec"
	"strings"

	"machine-bootstrap/internal/logger"
)

// Runner executes external commands. Every invocation is synchronous: Run
// blocks until the command exits and returns its combined stdout/stderr.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command and returns its combined output. A non-zero exit
// surfaces as the *exec.ExitError from CombinedOutput; callers wrap it in an
// ExternalCommandError via Checked.
func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// LookPath reports where a binary resolves on PATH.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// ExternalCommandError records a failed external command: the command line
// that was run, its combined output, and the underlying exit error.
// Any such failure is fatal to the whole run; nothing retries or recovers.
type ExternalCommandError struct {
	Cmd    string
	Output string
	Err    error
}

func (e *ExternalCommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("command %q failed: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v\nOutput: %s", e.Cmd, e.Err, out)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// Checked runs a command through the Runner and converts a non-zero exit into
// an *ExternalCommandError carrying the captured output.
func Checked(r Runner, name string, args ...string) error {
	out, err := r.Run(name, args...)
	if err != nil {
		return &ExternalCommandError{
			Cmd:    strings.Join(append([]string{name}, args...), " "),
			Output: string(out),
			Err:    err,
		}
	}
	return nil
}
