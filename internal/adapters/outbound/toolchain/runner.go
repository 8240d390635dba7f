package toolchain

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/codevet/codevet/internal/domain"
)

// ExecRunner implements domain.CommandRunner with os/exec. Arguments are
// passed as an argv array, never through a shell.
type ExecRunner struct{}

func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd and returns its merged stdout+stderr once the process
// exits. A non-zero exit with captured output is a normal outcome; only a
// failure to start the process is an error.
func (r *ExecRunner) Run(ctx context.Context, cmd domain.Command) (string, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	out, err := c.CombinedOutput()
	if err != nil {
		if _, exited := err.(*exec.ExitError); exited {
			return string(out), nil
		}
		return "", fmt.Errorf("executing %s: %w", cmd, err)
	}
	return string(out), nil
}
