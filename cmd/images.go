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
	imagesListOpts struct {
		listFlags
		installed bool
	}

	imagesInfoOpts struct {
		fields string
	}

	imagesCmd = &cobra.Command{
		Use:   "images",
		Short: "Inspect and manage registered images",
	}

	imagesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List registered images",
		Example: `  # List all registered images
  nexctl images list

  # Only images already installed on nodes
  nexctl images list --installed

  # Match by name glob
  nexctl images list --name 'python-*'`,
		Args: cobra.NoArgs,
		RunE: runImagesList,
	}

	imagesInfoCmd = &cobra.Command{
		Use:   "info <image-ref>",
		Short: "Show the information about the given image",
		Args:  cobra.ExactArgs(1),
		RunE:  runImagesInfo,
	}

	imagesForgetCmd = &cobra.Command{
		Use:   "forget <image-ref>",
		Short: "Remove an image from the registry records",
		Long:  `Remove an image from the manager's registry records. Asks for confirmation unless -y/--yes is given.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runImagesForget,
	}
)

func init() {
	rootCmd.AddCommand(imagesCmd)
	imagesCmd.AddCommand(imagesListCmd)
	imagesCmd.AddCommand(imagesInfoCmd)
	imagesCmd.AddCommand(imagesForgetCmd)

	addListFlags(imagesListCmd, &imagesListOpts.listFlags)
	imagesListCmd.Flags().BoolVar(&imagesListOpts.installed, "installed", false,
		"only list images installed on at least one node")

	imagesInfoCmd.Flags().StringVarP(&imagesInfoOpts.fields, "fields", "f", "",
		"comma-separated field keys to display")

	registerFieldCompletion(imagesListCmd, field.KindImage)
	registerFieldCompletion(imagesInfoCmd, field.KindImage)
}

func runImagesList(_ *cobra.Command, _ []string) error {
	filters := map[string]string{}
	if imagesListOpts.installed {
		filters["installed"] = "true"
	}
	return runResourceList(field.KindImage, filters, &imagesListOpts.listFlags)
}

func runImagesInfo(_ *cobra.Command, args []string) error {
	return runResourceDetail(field.KindImage, args[0], imagesInfoOpts.fields)
}

func runImagesForget(_ *cobra.Command, args []string) error {
	ref := args[0]

	ok, err := confirmAction(fmt.Sprintf("Forget image %s?", ref))
	if err != nil {
		return err
	}
	if !ok {
		output.Info("Forget aborted")
		return nil
	}

	ctx, cancel := getOperationContext()
	defer cancel()

	client, cleanup, err := newManagerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := client.Delete(ctx, field.KindImage, ref); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("✗ no matching entry found for image %q: %w", ref, api.ErrNotFound)
		}
		return wrapConnectionError(wrapTimeoutError(err))
	}

	output.Success(fmt.Sprintf("Image %s forgotten", ref))
	return nil
}
