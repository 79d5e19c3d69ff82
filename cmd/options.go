package cmd

import (
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the list of global flags inherited by all commands",
	Long:  `Print the list of global command-line options (flags) that can be passed to any command.`,
	Run:   runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) {
	cmd.Print(`The following options can be passed to any command:

    --context='':
        The name of the context to use (overrides current-context)

    --log-level='':
        Log level (debug, info, warn, error) - overrides config file

    -o, --output='table':
        Output format (table, simple, json)

    --strict-fields=false:
        Fail instead of warn when a requested field needs a newer server

    --timeout=30s:
        Timeout for manager operations (e.g., 30s, 1m, 2m30s)

    -y, --yes=false:
        Skip confirmation prompts for destructive operations
`)
}
