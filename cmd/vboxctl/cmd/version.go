package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set by the build process.
var Version = "dev"

// minEngineVersion is the oldest VBoxManage known to support the guestcontrol
// syntax this tool emits.
var minEngineVersion = semver.MustParse("5.0.0")

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vboxctl version and the detected engine version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("vboxctl version: %s\n", Version)

		engine, err := mgr.Version(cmd.Context())
		if err != nil {
			color.Yellow("VBoxManage not detected: %v", err)
			return nil
		}
		fmt.Printf("VBoxManage version: %s\n", engine)
		if engine.LessThan(minEngineVersion) {
			color.Red("VBoxManage %s is older than the minimum supported %s", engine, minEngineVersion)
		}
		return nil
	},
}
