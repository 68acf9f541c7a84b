package cmd

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danielgindi/go-vboxmanage/pkg/util"
	"github.com/danielgindi/go-vboxmanage/pkg/vbox"
)

var (
	listWithInfo   bool
	listJSONOutput bool
	listQuery      string
)

func init() {
	listCmd.Flags().BoolVar(&listWithInfo, "with-info", false, "Fetch per-machine state (spawns one query per machine)")
	listCmd.Flags().BoolVar(&listJSONOutput, "output-json", false, "Emit JSON instead of a table")
	listCmd.Flags().StringVar(&listQuery, "query", "", "gjson path applied to the JSON output")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered machines",
	RunE: func(cmd *cobra.Command, args []string) error {
		vms, err := mgr.ListVMs(cmd.Context())
		if err != nil {
			return err
		}

		states := make(map[string]string, len(vms))
		if listWithInfo {
			var mu sync.Mutex
			g, gCtx := errgroup.WithContext(cmd.Context())
			for _, vm := range vms {
				vm := vm
				g.Go(func() error {
					info, err := mgr.Info(gCtx, vm.UUID.String())
					if err != nil {
						return err
					}
					mu.Lock()
					states[vm.UUID.String()] = info["VMState"]
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}

		if listJSONOutput || listQuery != "" {
			return printVMsJSON(vms, states)
		}

		table := tablewriter.NewWriter(os.Stdout)
		header := []string{"NAME", "UUID"}
		if listWithInfo {
			header = append(header, "STATE")
		}
		table.SetHeader(header)
		for _, vm := range vms {
			row := []string{vm.Name, vm.UUID.String()}
			if listWithInfo {
				row = append(row, states[vm.UUID.String()])
			}
			table.Append(row)
		}
		table.Render()
		return nil
	},
}

// printVMsJSON assembles the JSON document key by key and optionally applies
// a gjson query to it.
func printVMsJSON(vms []vbox.VMSummary, states map[string]string) error {
	doc := []byte(`{"vms":[]}`)
	var err error
	for i, vm := range vms {
		if doc, err = util.SetJSON(doc, fmt.Sprintf("vms.%d.name", i), vm.Name); err != nil {
			return err
		}
		if doc, err = util.SetJSON(doc, fmt.Sprintf("vms.%d.uuid", i), vm.UUID.String()); err != nil {
			return err
		}
		if state, ok := states[vm.UUID.String()]; ok {
			if doc, err = util.SetJSON(doc, fmt.Sprintf("vms.%d.state", i), state); err != nil {
				return err
			}
		}
	}

	if listQuery != "" {
		value, err := util.QueryJSON(doc, listQuery)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}
	fmt.Println(string(doc))
	return nil
}

var infoQuery string

func init() {
	infoCmd.Flags().StringVar(&infoQuery, "query", "", "gjson path applied to the info document")
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <vm>",
	Short: "Show a machine's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := mgr.Info(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if infoQuery != "" {
			doc := []byte(`{}`)
			for k, v := range info {
				if doc, err = util.SetJSON(doc, k, v); err != nil {
					return err
				}
			}
			value, err := util.QueryJSON(doc, infoQuery)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		}

		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s=%s\n", k, info[k])
		}
		return nil
	},
}
