package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/field"
	"github.com/nexhub-io/nexctl/pkg/output"
)

var (
	jobsListOpts struct {
		listFlags
		status string
		owner  string
	}

	jobsInfoOpts struct {
		fields string
	}

	jobsCmd = &cobra.Command{
		Use:   "jobs",
		Short: "Inspect and manage compute jobs",
	}

	jobsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List compute jobs",
		Example: `  # List running jobs with the default columns
  nexctl jobs list

  # Choose columns and cap the listing
  nexctl jobs list -f id,owner,mem_used --max-items 100

  # Filter by status and owner, JSON for scripting
  nexctl jobs list --status TERMINATED --owner admin@example.com -o json`,
		Args: cobra.NoArgs,
		RunE: runJobsList,
	}

	jobsInfoCmd = &cobra.Command{
		Use:   "info <job-id>",
		Short: "Show the information about the given job",
		Args:  cobra.ExactArgs(1),
		RunE:  runJobsInfo,
	}

	jobsCancelCmd = &cobra.Command{
		Use:   "cancel <job-id>",
		Short: "Cancel a running job",
		Long:  `Cancel a running job. Asks for confirmation unless -y/--yes is given.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runJobsCancel,
	}
)

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsInfoCmd)
	jobsCmd.AddCommand(jobsCancelCmd)

	addListFlags(jobsListCmd, &jobsListOpts.listFlags)
	jobsListCmd.Flags().StringVar(&jobsListOpts.status, "status", "",
		"filter jobs by status (e.g., RUNNING, TERMINATED)")
	jobsListCmd.Flags().StringVar(&jobsListOpts.owner, "owner", "",
		"filter jobs by owner email")

	jobsInfoCmd.Flags().StringVarP(&jobsInfoOpts.fields, "fields", "f", "",
		"comma-separated field keys to display")

	registerFieldCompletion(jobsListCmd, field.KindJob)
	registerFieldCompletion(jobsInfoCmd, field.KindJob)
}

func runJobsList(_ *cobra.Command, _ []string) error {
	filters := map[string]string{}
	if jobsListOpts.status != "" {
		filters["status"] = jobsListOpts.status
	}
	if jobsListOpts.owner != "" {
		filters["owner"] = jobsListOpts.owner
	}
	return runResourceList(field.KindJob, filters, &jobsListOpts.listFlags)
}

func runJobsInfo(_ *cobra.Command, args []string) error {
	return runResourceDetail(field.KindJob, args[0], jobsInfoOpts.fields)
}

func runJobsCancel(_ *cobra.Command, args []string) error {
	jobID := args[0]

	ok, err := confirmAction(fmt.Sprintf("Cancel job %s?", jobID))
	if err != nil {
		return err
	}
	if !ok {
		output.Info("Cancel aborted")
		return nil
	}

	ctx, cancel := getOperationContext()
	defer cancel()

	client, cleanup, err := newManagerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.Delete(ctx, field.KindJob, jobID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("✗ no matching entry found for job %q: %w", jobID, api.ErrNotFound)
		}
		return wrapConnectionError(wrapTimeoutError(err))
	}

	output.Success(fmt.Sprintf("Job %s cancelled", jobID))
	return nil
}
