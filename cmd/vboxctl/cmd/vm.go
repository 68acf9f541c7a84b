package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/danielgindi/go-vboxmanage/pkg/vbox"
)

var (
	startGUI      bool
	startOptions  []string
	modifyOptions []string
	cloneSnapshot string
	cloneOptions  []string
	importOptions []string
	rawOptions    []string
)

func init() {
	startCmd.Flags().BoolVar(&startGUI, "gui", false, "Start with the windowed frontend instead of headless")
	startCmd.Flags().StringArrayVar(&startOptions, "option", nil, "Extra startvm option, name or name=value (repeatable)")
	modifyCmd.Flags().StringArrayVar(&modifyOptions, "set", nil, "modifyvm option, name or name=value (repeatable)")
	cloneCmd.Flags().StringVar(&cloneSnapshot, "snapshot", "", "Clone from the named snapshot")
	cloneCmd.Flags().StringArrayVar(&cloneOptions, "option", nil, "Extra clonevm option (repeatable)")
	importCmd.Flags().StringArrayVar(&importOptions, "option", nil, "Extra import option (repeatable)")
	rawCmd.Flags().StringArrayVar(&rawOptions, "option", nil, "Option appended after the positional arguments (repeatable)")

	rootCmd.AddCommand(startCmd, controlCmd, modifyCmd, cloneCmd, importCmd, rawCmd)
}

var startCmd = &cobra.Command{
	Use:   "start <vm>",
	Short: "Start a machine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.Start(cmd.Context(), args[0], startGUI, parseOptions(startOptions)...); err != nil {
			return err
		}
		color.Green("machine %s started", args[0])
		return nil
	},
}

var controlCmd = &cobra.Command{
	Use:   "control <vm> <reset|resume|savestate|poweroff|acpipowerbutton|acpisleepbutton>",
	Short: "Send a control action to a running machine",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		action := vbox.ControlAction(args[1])
		switch action {
		case vbox.ControlReset, vbox.ControlResume, vbox.ControlSaveState,
			vbox.ControlPowerOff, vbox.ControlACPIPowerButton, vbox.ControlACPISleepButton:
		default:
			return fmt.Errorf("unknown control action %q", args[1])
		}
		return mgr.Control(cmd.Context(), args[0], action)
	},
}

var modifyCmd = &cobra.Command{
	Use:   "modify <vm>",
	Short: "Change machine settings (modifyvm passthrough)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.Modify(cmd.Context(), args[0], parseOptions(modifyOptions)...)
	},
}

var cloneCmd = &cobra.Command{
	Use:   "clone <vm> <new-name>",
	Short: "Clone a machine, optionally from a snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := parseOptions(cloneOptions)
		var err error
		if cloneSnapshot != "" {
			err = mgr.CloneSnapshot(cmd.Context(), args[0], cloneSnapshot, args[1], opts...)
		} else {
			err = mgr.Clone(cmd.Context(), args[0], args[1], opts...)
		}
		if err != nil {
			return err
		}
		color.Green("cloned %s to %s", args[0], args[1])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <appliance.ova>",
	Short: "Import an appliance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(fmt.Sprintf("Importing %s", args[0])),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
		importArgs := []string{"import", args[0]}
		_, err := mgr.CommandStream(cmd.Context(), bar, importArgs, parseOptions(importOptions)...)
		_ = bar.Finish()
		if err != nil {
			return err
		}
		color.Green("imported %s", args[0])
		return nil
	},
}

var rawCmd = &cobra.Command{
	Use:   "raw <subcommand> [args...]",
	Short: "Run an arbitrary VBoxManage subcommand (escape hatch)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := mgr.Command(cmd.Context(), args, parseOptions(rawOptions)...)
		if out != "" {
			fmt.Print(out)
		}
		return err
	},
}
