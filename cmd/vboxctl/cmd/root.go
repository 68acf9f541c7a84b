package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielgindi/go-vboxmanage/pkg/config"
	"github.com/danielgindi/go-vboxmanage/pkg/executor"
	"github.com/danielgindi/go-vboxmanage/pkg/logger"
	"github.com/danielgindi/go-vboxmanage/pkg/util"
	"github.com/danielgindi/go-vboxmanage/pkg/vbox"
)

var (
	verboseFlag bool
	debugFlag   bool
	cfgFile     string
	binOverride string

	cfg *config.Config
	mgr vbox.Manager
)

var rootCmd = &cobra.Command{
	Use:   "vboxctl",
	Short: "vboxctl controls VirtualBox machines through VBoxManage.",
	Long: `vboxctl is a command-line frontend for the go-vboxmanage library.
It shapes VBoxManage invocations for machine lifecycle, snapshots, cloning,
guest file operations and guest command execution.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		logOpts := logger.DefaultOptions()
		if verboseFlag {
			logOpts.ConsoleLevel = logger.DebugLevel
		}
		if cfg.LogFile != "" {
			logOpts.FileOutput = true
			logOpts.LogFilePath = cfg.LogFile
		}
		logger.Init(logOpts)

		bin := cfg.VBoxManagePath
		if binOverride != "" {
			bin = binOverride
		}
		if bin == "" {
			bin = executor.Locate()
		}
		exec := executor.NewLocal(executor.Config{Debug: debugFlag || cfg.Debug})
		mgr = vbox.NewWithBinary(exec, bin)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(util.GenerateASCIIArt("vboxctl", "standard"))
		_ = cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	defer logger.SyncGlobal()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Echo assembled command lines before execution")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.vboxctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&binOverride, "vboxmanage", "", "Path to the VBoxManage binary")
}

// parseOptions turns "name" / "name=value" strings into ordered options.
// A bare name emits a flag with no value.
func parseOptions(raw []string) []vbox.Option {
	opts := make([]vbox.Option, 0, len(raw))
	for _, r := range raw {
		name, value, found := splitOption(r)
		if found {
			opts = append(opts, vbox.Opt(name, value))
		} else {
			opts = append(opts, vbox.Flag(name))
		}
	}
	return opts
}

func splitOption(s string) (name, value string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
