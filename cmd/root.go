package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ribd",
	Short: "NDN RIB daemon",
	Long: `ribd maintains the routing information base for a Named Data
Networking forwarder: prefix-tree route storage, CHILD_INHERIT/CAPTURE
inheritance, and queued updates to an external FIB.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "daemon", Title: "Daemon"})
	rootCmd.AddGroup(&cobra.Group{ID: "ops", Title: "Operations"})

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the daemon config file")
}
