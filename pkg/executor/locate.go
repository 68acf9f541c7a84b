package executor

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables that carry the VirtualBox installation directory on
// Windows. The MSI installer sets the second one.
const (
	envInstallPath    = "VBOX_INSTALL_PATH"
	envMSIInstallPath = "VBOX_MSI_INSTALL_PATH"
)

// Locate returns the VBoxManage invocation for the host platform. On Windows
// the installation directory is taken from the environment when available;
// everywhere else the bare command name is left to PATH resolution.
func Locate() string {
	if runtime.GOOS == "windows" {
		dir := os.Getenv(envInstallPath)
		if dir == "" {
			dir = os.Getenv(envMSIInstallPath)
		}
		if dir != "" {
			return filepath.Join(dir, "VBoxManage.exe")
		}
		return "VBoxManage.exe"
	}
	return "vboxmanage"
}
