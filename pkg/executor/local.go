package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/danielgindi/go-vboxmanage/pkg/logger"
)

// Config configures a LocalExecutor.
type Config struct {
	// Debug echoes every assembled command line to the log before running it.
	// Diagnostic only; it never changes behavior.
	Debug bool
}

// LocalExecutor runs command lines through the local shell.
type LocalExecutor struct {
	cfg Config
	log *logger.Logger
}

// NewLocal creates a LocalExecutor.
func NewLocal(cfg Config) *LocalExecutor {
	return &LocalExecutor{cfg: cfg, log: logger.Get()}
}

// Exec runs cmdline via "/bin/sh -c" (or "cmd /C" on Windows) and captures
// stdout and stderr. No retries.
func (l *LocalExecutor) Exec(ctx context.Context, cmdline string, opts *ExecOptions) (stdout, stderr []byte, err error) {
	effective := ExecOptions{}
	if opts != nil {
		effective = *opts
	}

	if l.cfg.Debug {
		l.log.Debugf("executing: %s", cmdline)
	}

	runCtx := ctx
	var cancel context.CancelFunc
	if effective.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, effective.Timeout)
		defer cancel()
	}

	shell := []string{"/bin/sh", "-c"}
	if runtime.GOOS == "windows" {
		shell = []string{"cmd", "/C"}
	}

	cmd := exec.CommandContext(runCtx, shell[0], append(shell[1:], cmdline)...)
	if len(effective.Env) > 0 {
		cmd.Env = append(os.Environ(), effective.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if effective.Stream != nil {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, effective.Stream)
		cmd.Stderr = io.MultiWriter(&stderrBuf, effective.Stream)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	runErr := cmd.Run()
	stdout = stdoutBuf.Bytes()
	stderr = stderrBuf.Bytes()
	if runErr == nil {
		return stdout, stderr, nil
	}

	exitCode := -1
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			exitCode = status.ExitStatus()
		}
	}
	if ctxErr := runCtx.Err(); ctxErr != nil {
		runErr = ctxErr
	}
	return stdout, stderr, &CommandError{
		Cmd:        cmdline,
		ExitCode:   exitCode,
		Stdout:     string(stdout),
		Stderr:     string(stderr),
		Underlying: runErr,
	}
}

var _ Executor = &LocalExecutor{}
