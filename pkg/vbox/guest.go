package vbox

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// authOptions renders guest credentials as trailing options. Empty fields are
// omitted entirely.
func authOptions(a GuestAuth) []Option {
	var opts []Option
	if a.Username != "" {
		opts = append(opts, Opt("username", a.Username))
	}
	if a.Password != "" {
		opts = append(opts, Opt("password", a.Password))
	}
	return opts
}

// CopyToGuest copies a host path into the guest filesystem.
func (m *defaultManager) CopyToGuest(ctx context.Context, vm, source, dest string, o *CopyOptions) error {
	if o == nil {
		o = &CopyOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "copyto", source, dest).WithOptions(authOptions(o.Auth)...)
	if o.Recursive {
		cmd.With("recursive", true)
	}
	_, err := m.run(ctx, cmd)
	return err
}

// CopyFromGuest copies a guest path onto the host filesystem.
func (m *defaultManager) CopyFromGuest(ctx context.Context, vm, source, dest string, o *CopyOptions) error {
	if o == nil {
		o = &CopyOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "copyfrom", source, dest).WithOptions(authOptions(o.Auth)...)
	if o.Recursive {
		cmd.With("recursive", true)
	}
	_, err := m.run(ctx, cmd)
	return err
}

// MkdirGuest creates a directory inside the guest.
func (m *defaultManager) MkdirGuest(ctx context.Context, vm, path string, o *MkdirOptions) error {
	if o == nil {
		o = &MkdirOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "mkdir", path).WithOptions(authOptions(o.Auth)...)
	if o.Parents {
		cmd.With("parents", true)
	}
	_, err := m.run(ctx, cmd)
	return err
}

// RmdirGuest removes a directory inside the guest.
func (m *defaultManager) RmdirGuest(ctx context.Context, vm, path string, o *RmdirOptions) error {
	if o == nil {
		o = &RmdirOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "rmdir", path).WithOptions(authOptions(o.Auth)...)
	if o.Recursive {
		cmd.With("recursive", true)
	}
	_, err := m.run(ctx, cmd)
	return err
}

// RemoveFileGuest removes a file inside the guest.
func (m *defaultManager) RemoveFileGuest(ctx context.Context, vm, path string, o *RemoveFileOptions) error {
	if o == nil {
		o = &RemoveFileOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "rm", path).WithOptions(authOptions(o.Auth)...)
	if o.Force {
		cmd.With("force", true)
	}
	_, err := m.run(ctx, cmd)
	return err
}

// MoveGuest moves or renames a path inside the guest.
func (m *defaultManager) MoveGuest(ctx context.Context, vm, source, dest string, o *MoveOptions) error {
	if o == nil {
		o = &MoveOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "mv", source, dest).WithOptions(authOptions(o.Auth)...)
	_, err := m.run(ctx, cmd)
	return err
}

// StatGuest probes a guest filesystem path and classifies the reply.
func (m *defaultManager) StatGuest(ctx context.Context, vm, path string, o *StatOptions) (StatResult, error) {
	if o == nil {
		o = &StatOptions{}
	}
	cmd := NewCommand("guestcontrol", vm, "stat", path).WithOptions(authOptions(o.Auth)...)
	out, err := m.run(ctx, cmd)
	if err != nil {
		return StatResult{}, err
	}
	return parseStat(out), nil
}

// isWindowsGuest classifies the guest OS family from the ostype value of a
// machine-readable info dump.
func isWindowsGuest(info map[string]string) bool {
	return strings.Contains(strings.ToLower(info["ostype"]), "windows")
}

// guestShell returns the shell image and its command separator for the guest
// OS family.
func guestShell(windows bool) (image, separator string) {
	if windows {
		return "cmd.exe", "/c"
	}
	return "/bin/sh", "-c"
}

// guestRunCommand assembles a `guestcontrol run` invocation. The shell flavor
// depends on the guest OS family, which is looked up per call and never
// cached. The command string plus the space-joined parameter list is passed
// as one combined final argument after the argv separator. Every token,
// credentials included, is positional here so that nothing lands after the
// `--` marker except the guest argv.
func (m *defaultManager) guestRunCommand(ctx context.Context, vm, command string, params []string, o *RunOptions, wait bool) (*Command, error) {
	if o == nil {
		o = &RunOptions{}
	}

	info, err := m.Info(ctx, vm)
	if err != nil {
		return nil, errors.Wrap(err, "querying guest OS family")
	}
	image, separator := guestShell(isWindowsGuest(info))

	combined := command
	if len(params) > 0 {
		combined += " " + strings.Join(params, " ")
	}

	args := []string{"guestcontrol", vm, "run", "--exe", image}
	if o.Auth.Username != "" {
		args = append(args, "--username", o.Auth.Username)
	}
	if o.Auth.Password != "" {
		args = append(args, "--password", o.Auth.Password)
	}
	if wait {
		args = append(args, "--wait-stdout", "--wait-stderr")
	}
	args = append(args, "--", image, separator, combined)
	return NewCommand(args...), nil
}

// ExecInGuest runs a command inside the guest and waits for its output.
func (m *defaultManager) ExecInGuest(ctx context.Context, vm, command string, params []string, o *RunOptions) (string, error) {
	cmd, err := m.guestRunCommand(ctx, vm, command, params, o, true)
	if err != nil {
		return "", err
	}
	return m.run(ctx, cmd)
}

// StartInGuest runs a command inside the guest without waiting for it.
func (m *defaultManager) StartInGuest(ctx context.Context, vm, command string, params []string, o *RunOptions) error {
	cmd, err := m.guestRunCommand(ctx, vm, command, params, o, false)
	if err != nil {
		return err
	}
	_, err = m.run(ctx, cmd)
	return err
}

// KillInGuest terminates a process by name inside the guest. It composes on
// top of ExecInGuest: the guest OS family picks the kill mechanism.
func (m *defaultManager) KillInGuest(ctx context.Context, vm, processName string, o *RunOptions) error {
	info, err := m.Info(ctx, vm)
	if err != nil {
		return errors.Wrap(err, "querying guest OS family")
	}
	var command string
	var params []string
	if isWindowsGuest(info) {
		command, params = "taskkill.exe", []string{"/im", processName}
	} else {
		command, params = "sudo", []string{"killall", processName}
	}
	_, err = m.ExecInGuest(ctx, vm, command, params, o)
	return err
}
