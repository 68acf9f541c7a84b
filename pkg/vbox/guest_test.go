package vbox

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielgindi/go-vboxmanage/pkg/executor"
)

// infoReply builds a minimal machine-readable dump for the given guest OS
// type; every other Exec call in these tests succeeds with empty output.
func infoReply(ostype string) func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
	return func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		if strings.Contains(cmdline, "showvminfo") {
			return []byte("ostype=\"" + ostype + "\"\n"), nil, nil
		}
		return nil, nil, nil
	}
}

func TestCopyToGuest(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.CopyToGuest(context.Background(), "ubuntu", "/host/src", "/guest/dst",
		&CopyOptions{Auth: GuestAuth{Username: "vagrant", Password: "secret"}, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu copyto /host/src /guest/dst"+
		" --username vagrant --password secret --recursive", mock.LastCmd)
}

func TestCopyFromGuest(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.CopyFromGuest(context.Background(), "ubuntu", "/guest/src", "/host/dst", nil)
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu copyfrom /guest/src /host/dst", mock.LastCmd)
}

func TestMkdirGuestParents(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.MkdirGuest(context.Background(), "ubuntu", "/a/b/c", &MkdirOptions{Parents: true})
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu mkdir /a/b/c --parents", mock.LastCmd)
}

func TestRmdirGuestRecursive(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.RmdirGuest(context.Background(), "ubuntu", "/tmp/dir", &RmdirOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu rmdir /tmp/dir --recursive", mock.LastCmd)
}

func TestRemoveFileGuestForce(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.RemoveFileGuest(context.Background(), "ubuntu", "/tmp/f", &RemoveFileOptions{Force: true})
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu rm /tmp/f --force", mock.LastCmd)
}

func TestMoveGuest(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.MoveGuest(context.Background(), "ubuntu", "/tmp/a", "/tmp/b", nil)
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu mv /tmp/a /tmp/b", mock.LastCmd)
}

func TestStatGuest(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("Element '/tmp' found: Is a directory\n"), nil, nil
	}

	st, err := mgr.StatGuest(context.Background(), "ubuntu", "/tmp", nil)
	require.NoError(t, err)
	assert.True(t, st.Exists)
	assert.True(t, st.IsDirectory)
	assert.Equal(t, "VBoxManage guestcontrol ubuntu stat /tmp", mock.LastCmd)
}

func TestExecInGuestLinuxShell(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Linux26_64")

	_, err := mgr.ExecInGuest(context.Background(), "ubuntu", "ls", []string{"-la", "/tmp"},
		&RunOptions{Auth: GuestAuth{Username: "vagrant", Password: "secret"}})
	require.NoError(t, err)

	require.Len(t, mock.History, 2, "one OS family lookup plus one run")
	assert.Contains(t, mock.History[0], "showvminfo ubuntu")
	assert.Equal(t, "VBoxManage guestcontrol ubuntu run --exe /bin/sh"+
		" --username vagrant --password secret --wait-stdout --wait-stderr"+
		" -- /bin/sh -c "+Escape("ls -la /tmp"), mock.LastCmd)
}

func TestExecInGuestWindowsShell(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Windows10_64")

	_, err := mgr.ExecInGuest(context.Background(), "win10", "dir", []string{"C:/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage guestcontrol win10 run --exe cmd.exe"+
		" --wait-stdout --wait-stderr -- cmd.exe /c "+Escape("dir C:/"), mock.LastCmd)
}

func TestExecInGuestOSFamilyIsLookedUpPerCall(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Linux26_64")
	_, err := mgr.ExecInGuest(context.Background(), "vm", "true", nil, nil)
	require.NoError(t, err)

	// Switching the reported family flips the shell on the very next call.
	mock.ExecFunc = infoReply("Windows2019_64")
	_, err = mgr.ExecInGuest(context.Background(), "vm", "ver", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, mock.LastCmd, "--exe cmd.exe")
}

func TestExecInGuestInfoFailurePropagates(t *testing.T) {
	mgr, mock := newTestManager()
	cmdErr := &executor.CommandError{Cmd: "x", ExitCode: 1, Stderr: "no such machine"}
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return nil, nil, cmdErr
	}

	_, err := mgr.ExecInGuest(context.Background(), "ghost", "ls", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying guest OS family")
	assert.Len(t, mock.History, 1, "the dependent run must not be attempted")
}

func TestStartInGuestDoesNotWait(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Linux26_64")

	err := mgr.StartInGuest(context.Background(), "ubuntu", "sleep", []string{"600"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, mock.LastCmd, "--wait-stdout")
	assert.NotContains(t, mock.LastCmd, "--wait-stderr")
}

func TestKillInGuestLinux(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Ubuntu_64")

	err := mgr.KillInGuest(context.Background(), "ubuntu", "nginx", nil)
	require.NoError(t, err)
	assert.Contains(t, mock.LastCmd, Escape("sudo killall nginx"))
}

func TestKillInGuestWindows(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = infoReply("Windows10_64")

	err := mgr.KillInGuest(context.Background(), "win10", "notepad.exe", nil)
	require.NoError(t, err)
	assert.Contains(t, mock.LastCmd, Escape("taskkill.exe /im notepad.exe"))
}

func TestIsWindowsGuest(t *testing.T) {
	assert.True(t, isWindowsGuest(map[string]string{"ostype": "Windows10_64"}))
	assert.True(t, isWindowsGuest(map[string]string{"ostype": "windows2019_64"}))
	assert.False(t, isWindowsGuest(map[string]string{"ostype": "Linux26_64"}))
	assert.False(t, isWindowsGuest(map[string]string{}))
}
