package media

import (
	"context"
	"errors"
	"os/exec"
)

// Runner executes an external tool and reports its combined output and exit
// code. A non-nil error means the process could not be launched at all;
// a failed tool is reported through exitCode instead.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (output []byte, exitCode int, err error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, int, error) {
	cmdPath, err := exec.LookPath(name)
	if err != nil {
		return nil, 0, &ToolNotAvailableError{Tool: name, Cause: err}
	}

	cmd := exec.CommandContext(ctx, cmdPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, exitErr.ExitCode(), nil
		}
		return output, 0, err
	}

	return output, 0, nil
}
