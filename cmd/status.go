package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connected manager's version and compatibility state",
	Example: `  # Show the session status
  nexctl status

  # Output as JSON
  nexctl status -o json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusInfo struct {
	Context       string `json:"context"`
	Endpoint      string `json:"endpoint"`
	ServerVersion string `json:"server_version"`
	MinVersion    string `json:"min_version"`
	State         string `json:"state"`
}

func runStatus(_ *cobra.Command, _ []string) error {
	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}

	cfg, err := config.GetManagerConfigWithContext(contextName)
	if err != nil {
		return wrapNotConnectedError(err)
	}
	name := contextName
	if name == "" {
		_, name, _ = config.GetCurrentContext()
	}

	client, cleanup, err := newManagerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	compat := api.NewCompat(client.ServerVersion(), api.MinServerVersion)
	state := "compatible"
	if compat.State() == api.DegradedWithWarning {
		state = "degraded"
	}
	serverVersion := client.ServerVersion().String()
	if client.ServerVersion().IsZero() {
		serverVersion = "unknown"
	}

	info := statusInfo{
		Context:       name,
		Endpoint:      cfg.Endpoint,
		ServerVersion: serverVersion,
		MinVersion:    api.MinServerVersion.String(),
		State:         state,
	}

	if format == output.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Context:        %s\n", info.Context)
	fmt.Printf("Endpoint:       %s\n", info.Endpoint)
	fmt.Printf("Manager:        %s\n", info.ServerVersion)
	fmt.Printf("Minimum tested: %s\n", info.MinVersion)
	fmt.Printf("State:          %s\n", info.State)
	return nil
}
