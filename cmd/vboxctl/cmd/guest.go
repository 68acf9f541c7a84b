package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielgindi/go-vboxmanage/pkg/vbox"
)

var (
	guestUsername  string
	guestPassword  string
	guestRecursive bool
	guestParents   bool
	guestForce     bool
)

func init() {
	guestCmd.PersistentFlags().StringVar(&guestUsername, "username", "", "Guest username (defaults to the config file)")
	guestCmd.PersistentFlags().StringVar(&guestPassword, "password", "", "Guest password (defaults to the config file)")
	guestCopyToCmd.Flags().BoolVarP(&guestRecursive, "recursive", "r", false, "Copy directories recursively")
	guestCopyFromCmd.Flags().BoolVarP(&guestRecursive, "recursive", "r", false, "Copy directories recursively")
	guestMkdirCmd.Flags().BoolVarP(&guestParents, "parents", "p", false, "Create missing parent directories")
	guestRmdirCmd.Flags().BoolVarP(&guestRecursive, "recursive", "r", false, "Remove the directory and its contents")
	guestRmCmd.Flags().BoolVarP(&guestForce, "force", "f", false, "Ignore missing files")

	guestCmd.AddCommand(guestCopyToCmd, guestCopyFromCmd, guestMkdirCmd, guestRmdirCmd,
		guestRmCmd, guestMvCmd, guestStatCmd, guestExecCmd, guestKillCmd)
	rootCmd.AddCommand(guestCmd)
}

var guestCmd = &cobra.Command{
	Use:   "guest",
	Short: "File operations and command execution inside a running guest",
}

// guestAuth resolves credentials: command-line flags win over the config file.
func guestAuth() vbox.GuestAuth {
	auth := vbox.GuestAuth{
		Username: cfg.GuestAuth.Username,
		Password: cfg.GuestAuth.Password,
	}
	if guestUsername != "" {
		auth.Username = guestUsername
	}
	if guestPassword != "" {
		auth.Password = guestPassword
	}
	return auth
}

var guestCopyToCmd = &cobra.Command{
	Use:   "copyto <vm> <host-source> <guest-dest>",
	Short: "Copy a file from the host into the guest",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.CopyToGuest(cmd.Context(), args[0], args[1], args[2],
			&vbox.CopyOptions{Auth: guestAuth(), Recursive: guestRecursive})
	},
}

var guestCopyFromCmd = &cobra.Command{
	Use:   "copyfrom <vm> <guest-source> <host-dest>",
	Short: "Copy a file from the guest to the host",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.CopyFromGuest(cmd.Context(), args[0], args[1], args[2],
			&vbox.CopyOptions{Auth: guestAuth(), Recursive: guestRecursive})
	},
}

var guestMkdirCmd = &cobra.Command{
	Use:   "mkdir <vm> <path>",
	Short: "Create a directory inside the guest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.MkdirGuest(cmd.Context(), args[0], args[1],
			&vbox.MkdirOptions{Auth: guestAuth(), Parents: guestParents})
	},
}

var guestRmdirCmd = &cobra.Command{
	Use:   "rmdir <vm> <path>",
	Short: "Remove a directory inside the guest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.RmdirGuest(cmd.Context(), args[0], args[1],
			&vbox.RmdirOptions{Auth: guestAuth(), Recursive: guestRecursive})
	},
}

var guestRmCmd = &cobra.Command{
	Use:   "rm <vm> <path>",
	Short: "Remove a file inside the guest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.RemoveFileGuest(cmd.Context(), args[0], args[1],
			&vbox.RemoveFileOptions{Auth: guestAuth(), Force: guestForce})
	},
}

var guestMvCmd = &cobra.Command{
	Use:   "mv <vm> <source> <dest>",
	Short: "Move or rename a path inside the guest",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.MoveGuest(cmd.Context(), args[0], args[1], args[2],
			&vbox.MoveOptions{Auth: guestAuth()})
	},
}

var guestStatCmd = &cobra.Command{
	Use:   "stat <vm> <path>",
	Short: "Classify a path inside the guest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := mgr.StatGuest(cmd.Context(), args[0], args[1],
			&vbox.StatOptions{Auth: guestAuth()})
		if err != nil {
			return err
		}
		switch {
		case st.IsDirectory:
			fmt.Println("directory")
		case st.IsFile:
			fmt.Println("file")
		case st.IsLink:
			fmt.Println("link")
		case st.Exists:
			fmt.Println("exists")
		default:
			fmt.Println("absent")
		}
		return nil
	},
}

var guestExecCmd = &cobra.Command{
	Use:   "exec <vm> <command> [params...]",
	Short: "Run a command inside the guest and print its output",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := mgr.ExecInGuest(cmd.Context(), args[0], args[1], args[2:],
			&vbox.RunOptions{Auth: guestAuth()})
		if out != "" {
			fmt.Print(out)
		}
		return err
	},
}

var guestKillCmd = &cobra.Command{
	Use:   "kill <vm> <process-name>",
	Short: "Terminate a process inside the guest by name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.KillInGuest(cmd.Context(), args[0], args[1],
			&vbox.RunOptions{Auth: guestAuth()})
	},
}
