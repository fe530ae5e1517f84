package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var statusAddr string

// statusCmd queries a running daemon's read-only status endpoint.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query a running daemon's /status endpoint",
	GroupID: "ops",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get("http://" + statusAddr + "/status")
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status request failed: %s: %s", resp.Status, body)
		}

		var pretty map[string]any
		if err := json.Unmarshal(body, &pretty); err != nil {
			fmt.Println(string(body))
			return nil
		}
		enc, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Println(string(enc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusAddr, "addr", "a", "127.0.0.1:8080", "address of the daemon's status server")
}
