package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielgindi/go-vboxmanage/pkg/logger"
)

var waitTimeout time.Duration

func init() {
	propertyWaitIPCmd.Flags().DurationVar(&waitTimeout, "timeout", 0, "How long to wait (negative waits forever, 0 uses the config default)")
	propertyCmd.AddCommand(propertyGetCmd, propertySetCmd, propertyDeleteCmd, propertyWaitIPCmd)
	rootCmd.AddCommand(propertyCmd)
}

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Read and write guest properties",
}

var propertyGetCmd = &cobra.Command{
	Use:   "get <vm> <key>",
	Short: "Read a guest property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok, err := mgr.GetProperty(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("property %s is not set on %s", args[1], args[0])
		}
		fmt.Println(value)
		return nil
	},
}

var propertySetCmd = &cobra.Command{
	Use:   "set <vm> <key> <value>",
	Short: "Write a guest property",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.SetProperty(cmd.Context(), args[0], args[1], args[2])
	},
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete <vm> <key>",
	Short: "Delete a guest property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mgr.DeleteProperty(cmd.Context(), args[0], args[1])
	},
}

var propertyWaitIPCmd = &cobra.Command{
	Use:   "wait-ip <vm>",
	Short: "Poll until the guest reports an IPv4 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := waitTimeout
		if timeout == 0 {
			timeout = cfg.WaitTimeout
		}
		logger.Get().Infof("waiting up to %s for %s to report an address", timeout, args[0])
		ip, ok, err := mgr.WaitForIP(cmd.Context(), args[0], timeout)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s did not report an address within %s", args[0], timeout)
		}
		fmt.Println(ip)
		return nil
	},
}
