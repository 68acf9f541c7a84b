package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes(t *testing.T) {
	yamlContent := `
vboxmanagePath: /opt/vbox/VBoxManage
debug: true
guestAuth:
  username: vagrant
  password: secret
waitTimeout: 2m
logFile: /var/log/vboxctl.log
`
	cfg, err := LoadFromBytes([]byte(yamlContent))
	require.NoError(t, err)
	assert.Equal(t, "/opt/vbox/VBoxManage", cfg.VBoxManagePath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "vagrant", cfg.GuestAuth.Username)
	assert.Equal(t, "secret", cfg.GuestAuth.Password)
	assert.Equal(t, 2*time.Minute, cfg.WaitTimeout)
	assert.Equal(t, "/var/log/vboxctl.log", cfg.LogFile)
}

func TestLoadFromBytesAppliesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("debug: false\n"))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.WaitTimeout)
}

func TestLoadFromBytesInvalidYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("debug: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml config")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	// A missing file is tolerated regardless of location; defaults apply.
	require.NoError(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vboxmanagePath: /usr/bin/vboxmanage\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/vboxmanage", cfg.VBoxManagePath)
	assert.Equal(t, 90*time.Second, cfg.WaitTimeout)
}

func TestNegativeWaitTimeoutPreserved(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("waitTimeout: -1s\n"))
	require.NoError(t, err)
	assert.Equal(t, -time.Second, cfg.WaitTimeout, "negative means wait indefinitely and must not be defaulted away")
}
