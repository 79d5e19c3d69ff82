package cmd

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/output"
)

const errFailedToLoadConfiguration = "failed to load configuration: %w"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage nexctl configuration",
	Long:  `Manage contexts and settings.`,
}

var getContextsCmd = &cobra.Command{
	Use:   "get-contexts",
	Short: "List all available contexts",
	RunE:  runGetContexts,
}

var currentContextCmd = &cobra.Command{
	Use:   "current-context",
	Short: "Display current active context",
	RunE:  runCurrentContext,
}

var useContextCmd = &cobra.Command{
	Use:               "use-context <context-name>",
	Short:             "Switch to a different context",
	Args:              cobra.ExactArgs(1),
	RunE:              runUseContext,
	ValidArgsFunction: CompleteContextNamesForArg,
}

var deleteContextCmd = &cobra.Command{
	Use:               "delete-context <context-name>",
	Short:             "Delete a context",
	Args:              cobra.ExactArgs(1),
	RunE:              runDeleteContext,
	ValidArgsFunction: CompleteContextNamesForArg,
}

var viewConfigCmd = &cobra.Command{
	Use:   "view",
	Short: "View current configuration",
	RunE:  runViewConfig,
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Keys: log-level, default-format, page-size, strict-fields`,
	Example: `  nexctl config set log-level debug
  nexctl config set default-format json
  nexctl config set page-size 50`,
	Args: cobra.ExactArgs(2),
	RunE: runSetConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(getContextsCmd)
	configCmd.AddCommand(currentContextCmd)
	configCmd.AddCommand(useContextCmd)
	configCmd.AddCommand(deleteContextCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(viewConfigCmd)
}

func runGetContexts(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	if len(cfg.Contexts) == 0 {
		output.Info("No contexts found. Use 'nexctl login' to create one.")
		return nil
	}

	names := make([]string, 0, len(cfg.Contexts))
	for name := range cfg.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		marker := " "
		if name == cfg.CurrentContext {
			marker = "*"
		}
		fmt.Printf("%s %s\t%s\n", marker, name, cfg.Contexts[name].Endpoint)
	}
	return nil
}

func runCurrentContext(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	if cfg.CurrentContext == "" {
		output.Info("No current context set. Use 'nexctl login' or 'nexctl config use-context <context-name>'.")
		return nil
	}

	fmt.Println(cfg.CurrentContext)
	return nil
}

func runUseContext(_ *cobra.Command, args []string) error {
	ctxName := args[0]

	if err := config.UseContext(ctxName); err != nil {
		return fmt.Errorf("failed to switch context: %w", err)
	}

	output.Success(fmt.Sprintf("Switched to context '%s'", ctxName))
	return nil
}

func runDeleteContext(_ *cobra.Command, args []string) error {
	ctxName := args[0]

	if err := config.DeleteContext(ctxName); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	output.Success(fmt.Sprintf("Context '%s' deleted", ctxName))
	return nil
}

func runSetConfig(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	switch key {
	case "log-level":
		validLevels := []string{"debug", "info", "warn", "error"}
		if !slices.Contains(validLevels, value) {
			return fmt.Errorf("invalid log level %s, valid: debug, info, warn, error", value)
		}
		cfg.LogLevel = value
	case "default-format":
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
		cfg.DefaultFormat = value
	case "page-size":
		n, convErr := strconv.Atoi(value)
		if convErr != nil || n <= 0 {
			return fmt.Errorf("invalid page size %s, must be a positive integer", value)
		}
		cfg.PageSize = n
	case "strict-fields":
		switch value {
		case "true":
			cfg.StrictFields = true
		case "false":
			cfg.StrictFields = false
		default:
			return fmt.Errorf("invalid boolean value %s, valid: true, false", value)
		}
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	output.Success(fmt.Sprintf("Configuration updated: %s = %s", key, value))
	return nil
}

func runViewConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf(errFailedToLoadConfiguration, err)
	}

	// Never print credentials.
	redacted := &config.Config{
		Contexts:       make(map[string]*config.ContextConfig, len(cfg.Contexts)),
		CurrentContext: cfg.CurrentContext,
		LogLevel:       cfg.LogLevel,
		DefaultFormat:  cfg.DefaultFormat,
		PageSize:       cfg.PageSize,
		StrictFields:   cfg.StrictFields,
	}
	for name, ctx := range cfg.Contexts {
		view := &config.ContextConfig{Endpoint: ctx.Endpoint}
		if ctx.AccessKey != "" {
			view.AccessKey = "REDACTED"
		}
		redacted.Contexts[name] = view
	}

	data, err := yaml.Marshal(redacted)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
