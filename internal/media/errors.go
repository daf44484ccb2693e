package media

import "fmt"

// MissingInputError reports a conversion attempted on a file that does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ToolNotAvailableError reports an external tool missing from the host.
type ToolNotAvailableError struct {
	Tool  string
	Cause error
}

func (e *ToolNotAvailableError) Error() string {
	return fmt.Sprintf("%s is not installed or not in the PATH", e.Tool)
}

func (e *ToolNotAvailableError) Unwrap() error {
	return e.Cause
}

// ToolFailedError reports an external tool that exited non-zero.
type ToolFailedError struct {
	Tool     string
	ExitCode int
	Output   string
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("%s failed with code %d: %s", e.Tool, e.ExitCode, e.Output)
}
