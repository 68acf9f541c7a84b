// Package vbox is a programmatic control layer over the VBoxManage command
// line tool. It assembles correctly escaped command lines, dispatches them
// through an executor, and interprets the textual replies. It does not talk
// to the virtualization engine by any other channel.
package vbox

import (
	"context"
	"io"
	"time"

	"github.com/Masterminds/semver/v3"
)

// ControlAction is a `controlvm` verb.
type ControlAction string

const (
	ControlReset           ControlAction = "reset"
	ControlResume          ControlAction = "resume"
	ControlSaveState       ControlAction = "savestate"
	ControlPowerOff        ControlAction = "poweroff"
	ControlACPIPowerButton ControlAction = "acpipowerbutton"
	ControlACPISleepButton ControlAction = "acpisleepbutton"
)

// GuestAuth carries the guest credentials for guestcontrol operations. The
// zero value means "no credentials on the command line".
type GuestAuth struct {
	Username string
	Password string
}

// CopyOptions configures CopyToGuest / CopyFromGuest.
type CopyOptions struct {
	Auth      GuestAuth
	Recursive bool
}

// MkdirOptions configures MkdirGuest.
type MkdirOptions struct {
	Auth    GuestAuth
	Parents bool
}

// RmdirOptions configures RmdirGuest.
type RmdirOptions struct {
	Auth      GuestAuth
	Recursive bool
}

// RemoveFileOptions configures RemoveFileGuest.
type RemoveFileOptions struct {
	Auth  GuestAuth
	Force bool
}

// MoveOptions configures MoveGuest.
type MoveOptions struct {
	Auth GuestAuth
}

// StatOptions configures StatGuest.
type StatOptions struct {
	Auth GuestAuth
}

// RunOptions configures guest command execution.
type RunOptions struct {
	Auth GuestAuth
}

// Manager is the set of high-level VBoxManage operations. Every method is one
// command build plus at most one output parser; blocking methods honor ctx.
// Each call spawns one independent helper process; the Manager applies no
// pooling, queueing or concurrency limit of its own.
type Manager interface {
	// Command is the generic escape hatch: it runs an arbitrary subcommand
	// with arbitrary options through the same builder path as every named
	// operation and returns captured stdout.
	Command(ctx context.Context, args []string, opts ...Option) (string, error)
	// CommandStream is Command with stdout/stderr additionally streamed to w
	// as they arrive.
	CommandStream(ctx context.Context, w io.Writer, args []string, opts ...Option) (string, error)

	// Guest properties.
	GetProperty(ctx context.Context, vm, key string) (value string, ok bool, err error)
	SetProperty(ctx context.Context, vm, key, value string) error
	DeleteProperty(ctx context.Context, vm, key string) error
	// WaitForIP polls the guest property holding the IPv4 address until it
	// appears or timeout elapses. A negative timeout waits indefinitely.
	// Exhausting a bounded wait is not an error: ok is false.
	WaitForIP(ctx context.Context, vm string, timeout time.Duration) (ip string, ok bool, err error)

	// Cloning and snapshots.
	Clone(ctx context.Context, vm, newName string, opts ...Option) error
	CloneSnapshot(ctx context.Context, vm, snapshot, newName string, opts ...Option) error
	TakeSnapshot(ctx context.Context, vm, name string) error
	RestoreSnapshot(ctx context.Context, vm, name string) error

	// Machine information.
	Info(ctx context.Context, vm string) (map[string]string, error)
	// IsRegistered reports whether vm is known to the engine. Any failure of
	// the underlying info query collapses to false.
	IsRegistered(ctx context.Context, vm string) bool
	ListVMs(ctx context.Context) ([]VMSummary, error)
	Version(ctx context.Context) (*semver.Version, error)

	// Machine lifecycle.
	Modify(ctx context.Context, vm string, opts ...Option) error
	Import(ctx context.Context, appliancePath string, opts ...Option) error
	Start(ctx context.Context, vm string, gui bool, opts ...Option) error
	Control(ctx context.Context, vm string, action ControlAction) error

	// Guest file operations.
	CopyToGuest(ctx context.Context, vm, source, dest string, o *CopyOptions) error
	CopyFromGuest(ctx context.Context, vm, source, dest string, o *CopyOptions) error
	MkdirGuest(ctx context.Context, vm, path string, o *MkdirOptions) error
	RmdirGuest(ctx context.Context, vm, path string, o *RmdirOptions) error
	RemoveFileGuest(ctx context.Context, vm, path string, o *RemoveFileOptions) error
	MoveGuest(ctx context.Context, vm, source, dest string, o *MoveOptions) error
	StatGuest(ctx context.Context, vm, path string, o *StatOptions) (StatResult, error)

	// Guest command execution. ExecInGuest waits for the command and returns
	// its output; StartInGuest fires and forgets. Both look up the guest OS
	// family first and propagate that lookup's failure before attempting the
	// dependent command.
	ExecInGuest(ctx context.Context, vm, command string, params []string, o *RunOptions) (string, error)
	StartInGuest(ctx context.Context, vm, command string, params []string, o *RunOptions) error
	// KillInGuest terminates a process by name inside the guest, dispatching
	// taskkill.exe or `sudo killall` depending on the guest OS family.
	KillInGuest(ctx context.Context, vm, processName string, o *RunOptions) error
}
