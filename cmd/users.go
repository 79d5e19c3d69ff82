package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/field"
)

var (
	usersListOpts struct {
		listFlags
		role   string
		domain string
	}

	usersInfoOpts struct {
		fields string
	}

	usersCmd = &cobra.Command{
		Use:   "users",
		Short: "Inspect user accounts (admin privilege required)",
	}

	usersListCmd = &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Example: `  # List all users
  nexctl users list

  # Admins of one domain
  nexctl users list --role admin --domain default`,
		Args: cobra.NoArgs,
		RunE: runUsersList,
	}

	usersInfoCmd = &cobra.Command{
		Use:   "info <email-or-uuid>",
		Short: "Show the information about the given user",
		Args:  cobra.ExactArgs(1),
		RunE:  runUsersInfo,
	}
)

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersInfoCmd)

	addListFlags(usersListCmd, &usersListOpts.listFlags)
	usersListCmd.Flags().StringVar(&usersListOpts.role, "role", "",
		"filter users by role (user, admin, superadmin)")
	usersListCmd.Flags().StringVar(&usersListOpts.domain, "domain", "",
		"filter users by domain name")

	usersInfoCmd.Flags().StringVarP(&usersInfoOpts.fields, "fields", "f", "",
		"comma-separated field keys to display")

	registerFieldCompletion(usersListCmd, field.KindUser)
	registerFieldCompletion(usersInfoCmd, field.KindUser)
}

func runUsersList(_ *cobra.Command, _ []string) error {
	filters := map[string]string{}
	if usersListOpts.role != "" {
		filters["role"] = usersListOpts.role
	}
	if usersListOpts.domain != "" {
		filters["domain"] = usersListOpts.domain
	}
	return runResourceList(field.KindUser, filters, &usersListOpts.listFlags)
}

func runUsersInfo(_ *cobra.Command, args []string) error {
	return runResourceDetail(field.KindUser, args[0], usersInfoOpts.fields)
}
