package executor

import "fmt"

// CommandError describes a command invocation that could not be started or
// exited nonzero. The captured stderr is attached; nothing else about the
// failure is rewritten.
type CommandError struct {
	Cmd        string
	ExitCode   int
	Stdout     string
	Stderr     string
	Underlying error
}

// Error returns a string representation of the CommandError.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command '%s' failed with exit code %d", e.Cmd, e.ExitCode)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s (underlying error: %v)", msg, e.Underlying)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is and errors.As support.
func (e *CommandError) Unwrap() error {
	return e.Underlying
}
