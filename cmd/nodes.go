package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/field"
)

var (
	nodesListOpts struct {
		listFlags
		status string
		all    bool
	}

	nodesInfoOpts struct {
		fields string
	}

	nodesCmd = &cobra.Command{
		Use:   "nodes",
		Short: "Inspect compute nodes",
	}

	nodesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List compute nodes",
		Example: `  # List live nodes
  nexctl nodes list

  # Include lost and terminated nodes
  nexctl nodes list --all

  # Show slot usage columns
  nexctl nodes list -f id,available_slots,occupied_slots`,
		Args: cobra.NoArgs,
		RunE: runNodesList,
	}

	nodesInfoCmd = &cobra.Command{
		Use:   "info <node-id>",
		Short: "Show the information about the given node",
		Args:  cobra.ExactArgs(1),
		RunE:  runNodesInfo,
	}
)

func init() {
	rootCmd.AddCommand(nodesCmd)
	nodesCmd.AddCommand(nodesListCmd)
	nodesCmd.AddCommand(nodesInfoCmd)

	addListFlags(nodesListCmd, &nodesListOpts.listFlags)
	nodesListCmd.Flags().StringVar(&nodesListOpts.status, "status", "ALIVE",
		"filter nodes by the given status")
	nodesListCmd.Flags().BoolVar(&nodesListOpts.all, "all", false,
		"list nodes in every status")

	nodesInfoCmd.Flags().StringVarP(&nodesInfoOpts.fields, "fields", "f", "",
		"comma-separated field keys to display")

	registerFieldCompletion(nodesListCmd, field.KindNode)
	registerFieldCompletion(nodesInfoCmd, field.KindNode)
}

func runNodesList(_ *cobra.Command, _ []string) error {
	filters := map[string]string{}
	if !nodesListOpts.all && nodesListOpts.status != "" {
		filters["status"] = nodesListOpts.status
	}
	return runResourceList(field.KindNode, filters, &nodesListOpts.listFlags)
}

func runNodesInfo(_ *cobra.Command, args []string) error {
	return runResourceDetail(field.KindNode, args[0], nodesInfoOpts.fields)
}
