package vbox

import (
	"context"
	"io"

	"github.com/danielgindi/go-vboxmanage/pkg/executor"
	"github.com/danielgindi/go-vboxmanage/pkg/logger"
)

// defaultManager implements Manager on top of an Executor. It holds no
// mutable state: every operation assembles a fresh command line and spawns a
// fresh helper process.
type defaultManager struct {
	exec executor.Executor
	bin  string
	log  *logger.Logger
}

// New creates a Manager using the platform-resolved VBoxManage binary.
func New(exec executor.Executor) Manager {
	return NewWithBinary(exec, executor.Locate())
}

// NewWithBinary creates a Manager invoking the given binary path.
func NewWithBinary(exec executor.Executor, bin string) Manager {
	return &defaultManager{exec: exec, bin: bin, log: logger.Get()}
}

// run executes cmd and returns captured stdout. Executor failures pass
// through unmodified; they already carry the captured stderr.
func (m *defaultManager) run(ctx context.Context, cmd *Command) (string, error) {
	return m.runStream(ctx, nil, cmd)
}

func (m *defaultManager) runStream(ctx context.Context, w io.Writer, cmd *Command) (string, error) {
	line := Escape(m.bin) + " " + cmd.String()
	var opts *executor.ExecOptions
	if w != nil {
		opts = &executor.ExecOptions{Stream: w}
	}
	stdout, _, err := m.exec.Exec(ctx, line, opts)
	return string(stdout), err
}

// Command runs an arbitrary subcommand with arbitrary options. It is the
// universal fallback for functionality not otherwise wrapped and shares the
// builder path with every named operation.
func (m *defaultManager) Command(ctx context.Context, args []string, opts ...Option) (string, error) {
	return m.run(ctx, NewCommand(args...).WithOptions(opts...))
}

// CommandStream is Command with live output streaming.
func (m *defaultManager) CommandStream(ctx context.Context, w io.Writer, args []string, opts ...Option) (string, error) {
	return m.runStream(ctx, w, NewCommand(args...).WithOptions(opts...))
}

var _ Manager = &defaultManager{}
