package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ndnfwd/ribd/daemon"
)

var listenAddr string

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the RIB daemon",
	Long:  `Starts the RIB daemon with a loopback FIB updater and serves /status and /metrics over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return daemon.Start(context.Background(), daemon.Options{
			ConfigPath: configPath,
			ListenAddr: listenAddr,
			Verbose:    verbose,
		})
	},
	GroupID: "daemon",
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "verbose logging")
	runCmd.Flags().StringVarP(&listenAddr, "listen", "l", "127.0.0.1:8080", "address to serve /status and /metrics on, empty to disable")
}
