package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/output"
)

var (
	loginOpts struct {
		name      string
		endpoint  string
		accessKey string
	}

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Configure a manager endpoint context",
		Long: `Add or update a named manager context and make it the current one.

The endpoint is verified by connecting and reading the manager's
advertised version before anything is saved.`,
		Example: `  # Add the default context
  nexctl login --endpoint https://manager.example.com --access-key AKIA...

  # Keep several clusters side by side
  nexctl login --name staging --endpoint https://staging.example.com`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginOpts.name, "name", "default",
		"name of the context to create or update")
	loginCmd.Flags().StringVar(&loginOpts.endpoint, "endpoint", "",
		"manager API endpoint URL")
	loginCmd.Flags().StringVar(&loginOpts.accessKey, "access-key", "",
		"access key for the manager API")
}

func runLogin(_ *cobra.Command, _ []string) error {
	if loginOpts.endpoint == "" {
		if !output.IsTerminal() {
			return fmt.Errorf("--endpoint is required in non-interactive sessions")
		}
		if err := huh.NewInput().
			Title("Manager endpoint URL").
			Placeholder("https://manager.example.com").
			Value(&loginOpts.endpoint).
			Run(); err != nil {
			return err
		}
		if loginOpts.endpoint == "" {
			return fmt.Errorf("no endpoint given")
		}
	}

	// Verify the endpoint before persisting it.
	client, err := api.NewClient(api.Config{
		Endpoint:  loginOpts.endpoint,
		AccessKey: loginOpts.accessKey,
		Timeout:   operationTimeout,
	})
	if err != nil {
		return wrapConnectionError(err)
	}
	serverVersion := client.ServerVersion()
	_ = client.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.Contexts[loginOpts.name] = &config.ContextConfig{
		Endpoint:  loginOpts.endpoint,
		AccessKey: loginOpts.accessKey,
	}
	cfg.CurrentContext = loginOpts.name
	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	if serverVersion.IsZero() {
		output.Success(fmt.Sprintf("Context %q saved (manager did not report a version)", loginOpts.name))
	} else {
		output.Success(fmt.Sprintf("Context %q saved (manager %s)", loginOpts.name, serverVersion))
	}
	compat := api.NewCompat(serverVersion, api.MinServerVersion)
	if compat.State() == api.DegradedWithWarning {
		output.Warning(fmt.Sprintf("manager %s is older than the minimum tested version %s",
			serverVersion, api.MinServerVersion))
	}
	return nil
}
