package vbox

import (
	"context"

	"github.com/danielgindi/go-vboxmanage/pkg/executor"
)

// MockExecutor is a mock implementation of the executor.Executor interface for
// testing. ExecFunc can be set per test; every invocation is recorded.
type MockExecutor struct {
	// ExecFunc can be set to mock the Exec method.
	ExecFunc func(ctx context.Context, cmdline string, opts *executor.ExecOptions) (stdout, stderr []byte, err error)

	// LastCmd stores the last command line passed to Exec, useful for assertions.
	LastCmd string
	// History stores every command line in invocation order.
	History []string
}

// NewMockExecutor creates a MockExecutor whose Exec succeeds with empty output.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		ExecFunc: func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
			return nil, nil, nil
		},
	}
}

func (m *MockExecutor) Exec(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
	m.LastCmd = cmdline
	m.History = append(m.History, cmdline)
	return m.ExecFunc(ctx, cmdline, opts)
}

var _ executor.Executor = &MockExecutor{}

// newTestManager wires a MockExecutor to a manager with a fixed binary name so
// that assertions on assembled command lines are stable.
func newTestManager() (*defaultManager, *MockExecutor) {
	mock := NewMockExecutor()
	return NewWithBinary(mock, "VBoxManage").(*defaultManager), mock
}
