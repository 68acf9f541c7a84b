package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	snapshotCmd.AddCommand(snapshotTakeCmd, snapshotRestoreCmd)
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Take and restore machine snapshots",
}

var snapshotTakeCmd = &cobra.Command{
	Use:   "take <vm> <name>",
	Short: "Take a snapshot of the machine's current state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.TakeSnapshot(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		color.Green("snapshot %s taken", args[1])
		return nil
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <vm> <name>",
	Short: "Restore the machine to a named snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.RestoreSnapshot(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		color.Green("snapshot %s restored", args[1])
		return nil
	},
}
