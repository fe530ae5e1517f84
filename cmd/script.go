package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/mgmt"
	"github.com/ndnfwd/ribd/rib"
)

// scriptCmd replays a YAML list of REGISTER/UNREGISTER/REMOVE_FACE
// commands against an in-process RIB with a synchronous loopback FIB
// updater, then prints the resulting entry count. Useful for demos and
// for exercising the management-command surface without a running
// daemon.
var scriptCmd = &cobra.Command{
	Use:     "script [file]",
	Short:   "Replay a YAML update script against an in-process RIB",
	Args:    cobra.ExactArgs(1),
	GroupID: "ops",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		entries, err := mgmt.ParseScript(data)
		if err != nil {
			return err
		}

		r := rib.New()
		r.SetFibUpdater(&fib.Func{
			Compute: func(rib.RibUpdateBatch) ([]rib.RibUpdate, error) { return nil, nil },
		})

		err = mgmt.Apply(r, entries, func(entry mgmt.ScriptEntry, resp mgmt.ControlResponse) {
			fmt.Printf("%-12s %-20s face=%-4d -> %d %s\n", entry.Action, entry.Name, entry.FaceID, resp.Code, resp.Text)
		})
		if err != nil {
			return err
		}

		fmt.Printf("\n%d entries, %d routes\n", r.EntryCount(), r.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}
