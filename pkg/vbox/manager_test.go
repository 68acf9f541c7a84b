package vbox

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielgindi/go-vboxmanage/pkg/executor"
)

func TestCommandEscapeHatch(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("ok\n"), nil, nil
	}

	out, err := mgr.Command(context.Background(), []string{"list", "ostypes"}, Flag("long"))
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	assert.Equal(t, "VBoxManage list ostypes --long", mock.LastCmd)
}

func TestCommandStreamPassesWriter(t *testing.T) {
	mgr, mock := newTestManager()
	var streamed *executor.ExecOptions
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		streamed = opts
		return []byte("0%...10%...\n"), nil, nil
	}

	var buf bytes.Buffer
	out, err := mgr.CommandStream(context.Background(), &buf, []string{"import", "box.ova"})
	require.NoError(t, err)
	assert.Equal(t, "0%...10%...\n", out)
	require.NotNil(t, streamed)
	assert.Same(t, &buf, streamed.Stream.(*bytes.Buffer))
}

func TestStartHeadlessByDefault(t *testing.T) {
	mgr, mock := newTestManager()
	require.NoError(t, mgr.Start(context.Background(), "ubuntu", false))
	assert.Equal(t, "VBoxManage startvm ubuntu --type headless", mock.LastCmd)
}

func TestStartGUI(t *testing.T) {
	mgr, mock := newTestManager()
	require.NoError(t, mgr.Start(context.Background(), "ubuntu", true))
	assert.Equal(t, "VBoxManage startvm ubuntu --type gui", mock.LastCmd)
}

func TestControl(t *testing.T) {
	mgr, mock := newTestManager()
	require.NoError(t, mgr.Control(context.Background(), "ubuntu", ControlPowerOff))
	assert.Equal(t, "VBoxManage controlvm ubuntu poweroff", mock.LastCmd)
}

func TestModifyPassesOptionsThrough(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.Modify(context.Background(), "ubuntu", Opt("memory", 4096), Opt("cpus", 2))
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage modifyvm ubuntu --memory 4096 --cpus 2", mock.LastCmd)
}

func TestImport(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.Import(context.Background(), "box.ova", Opt("vsys", 0), Flag("keepnatmacs"))
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage import box.ova --vsys 0 --keepnatmacs", mock.LastCmd)
}

func TestClone(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.Clone(context.Background(), "base", "copy", Flag("register"))
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage clonevm base --name copy --register", mock.LastCmd)
}

func TestCloneSnapshot(t *testing.T) {
	mgr, mock := newTestManager()
	err := mgr.CloneSnapshot(context.Background(), "base", "golden", "copy")
	require.NoError(t, err)
	assert.Equal(t, "VBoxManage clonevm base --name copy --snapshot golden", mock.LastCmd)
}

func TestTakeSnapshot(t *testing.T) {
	mgr, mock := newTestManager()
	require.NoError(t, mgr.TakeSnapshot(context.Background(), "ubuntu", "before-upgrade"))
	assert.Equal(t, "VBoxManage snapshot ubuntu take before-upgrade", mock.LastCmd)
}

func TestRestoreSnapshot(t *testing.T) {
	mgr, mock := newTestManager()
	require.NoError(t, mgr.RestoreSnapshot(context.Background(), "ubuntu", "before-upgrade"))
	assert.Equal(t, "VBoxManage snapshot ubuntu restore before-upgrade", mock.LastCmd)
}

func TestInfo(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("name=\"ubuntu\"\nostype=\"Linux26_64\"\n"), nil, nil
	}

	info, err := mgr.Info(context.Background(), "ubuntu")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu", info["name"])
	assert.Equal(t, "VBoxManage showvminfo ubuntu --machinereadable", mock.LastCmd)
}

func TestIsRegistered(t *testing.T) {
	mgr, mock := newTestManager()
	assert.True(t, mgr.IsRegistered(context.Background(), "ubuntu"))

	// Any failure of the info query, whatever its cause, collapses to false.
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return nil, nil, &executor.CommandError{Cmd: cmdline, ExitCode: 1, Stderr: "Could not find a registered machine"}
	}
	assert.False(t, mgr.IsRegistered(context.Background(), "ghost"))
}

func TestListVMs(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("\"ubuntu\" {bdbed41a-8e45-44b8-a2ac-2c0b08eedf3c}\n"), nil, nil
	}

	vms, err := mgr.ListVMs(context.Background())
	require.NoError(t, err)
	require.Len(t, vms, 1)
	assert.Equal(t, "ubuntu", vms[0].Name)
	assert.Equal(t, "VBoxManage list vms", mock.LastCmd)
}

func TestVersion(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("7.0.18r162988\n"), nil, nil
	}

	v, err := mgr.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7.0.18", v.String())
	assert.Equal(t, "VBoxManage --version", mock.LastCmd)
}

func TestVersionUnrecognizedOutput(t *testing.T) {
	mgr, mock := newTestManager()
	mock.ExecFunc = func(ctx context.Context, cmdline string, opts *executor.ExecOptions) ([]byte, []byte, error) {
		return []byte("WARNING: something unexpected\n"), nil, nil
	}

	_, err := mgr.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized version output")
}
