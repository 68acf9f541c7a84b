// Package executor runs fully assembled command lines through the host shell
// and captures their output. It is the process-spawning boundary of the
// library: callers hand it one command line, it hands back stdout/stderr or a
// structured CommandError. One invocation, one attempt; retrying is a caller
// concern.
package executor

import (
	"context"
	"io"
	"time"
)

// Executor executes one external command line and captures its output.
type Executor interface {
	// Exec runs cmdline through the host shell. On a nonzero exit or spawn
	// failure err is a *CommandError carrying the captured stderr.
	Exec(ctx context.Context, cmdline string, opts *ExecOptions) (stdout, stderr []byte, err error)
}

// ExecOptions controls a single invocation.
type ExecOptions struct {
	// Timeout bounds the invocation; zero means no bound beyond ctx.
	Timeout time.Duration
	// Env entries are appended to the inherited environment.
	Env []string
	// Stream, when set, additionally receives stdout/stderr as they arrive.
	Stream io.Writer
}
