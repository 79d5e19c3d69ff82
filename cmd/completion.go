package cmd

import (
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/output"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for nexctl.

To load completions:

Bash:
  # Linux:
  $ nexctl completion bash > /etc/bash_completion.d/nexctl

  # macOS (with Homebrew):
  $ nexctl completion bash > $(brew --prefix)/etc/bash_completion.d/nexctl

Zsh:
  # If shell completion is not already enabled, enable it by adding:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Then load the nexctl completions:
  $ nexctl completion zsh > "${fpath[1]}/_nexctl"

  # You may need to restart your shell or run:
  $ source ~/.zshrc

Fish:
  $ nexctl completion fish > ~/.config/fish/completions/nexctl.fish

PowerShell:
  PS> nexctl completion powershell | Out-String | Invoke-Expression

  # To load on every session:
  PS> nexctl completion powershell >> $PROFILE
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:                  runCompletion,
}

func init() {
	rootCmd.AddCommand(completionCmd)

	if err := rootCmd.RegisterFlagCompletionFunc("context", completeContextNames); err != nil {
		_ = err // best-effort
	}
	if err := rootCmd.RegisterFlagCompletionFunc("output", completeOutputFormats); err != nil {
		_ = err // best-effort
	}
}

// registerFieldCompletion wires field-key completion for a command's
// -f/--fields flag so that valid keys for the kind are suggested.
func registerFieldCompletion(cmd *cobra.Command, kind string) {
	err := cmd.RegisterFlagCompletionFunc("fields",
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			specs, err := registry.All(kind)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			keys := make([]string, 0, len(specs))
			for _, spec := range specs {
				keys = append(keys, spec.Key)
			}
			return keys, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		})
	if err != nil {
		_ = err // best-effort
	}
}

func completeOutputFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	all := output.AllFormats()
	formats := make([]string, 0, len(all))
	for _, f := range all {
		formats = append(formats, f.String())
	}
	return formats, cobra.ShellCompDirectiveNoFileComp
}

func runCompletion(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	}
	return nil
}

// completeContextNames returns available context names for shell completion
func completeContextNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	contexts := make([]string, 0, len(cfg.Contexts))
	for name := range cfg.Contexts {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	return contexts, cobra.ShellCompDirectiveNoFileComp
}

// CompleteContextNamesForArg is exported for use by other commands that take context as an argument
func CompleteContextNamesForArg(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	// Only complete first argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeContextNames(nil, nil, "")
}
