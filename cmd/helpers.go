package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/field"
	"github.com/nexhub-io/nexctl/pkg/logger"
	"github.com/nexhub-io/nexctl/pkg/output"
	"github.com/nexhub-io/nexctl/pkg/query"
)

func loadAppConfig() *config.Config {
	appCfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Debugw("Failed to load config, using defaults", "error", err)
		return nil
	}
	return appCfg
}

// getOperationContext returns a context bounded by --timeout and
// cancelled on interrupt, so Ctrl-C abandons in-flight page fetches
// without corrupting output already produced.
func getOperationContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func wrapTimeoutError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("operation timed out after %v: consider increasing --timeout", operationTimeout)
	}
	return err
}

// newManagerClient connects to the configured manager endpoint and
// applies the session-level version gate: a server older than the
// minimum known-good version degrades the session with one warning and
// stays usable.
func newManagerClient() (*api.Client, func(), error) {
	cfg, err := config.GetManagerConfigWithContext(contextName)
	if err != nil {
		return nil, nil, wrapNotConnectedError(err)
	}
	cfg.Timeout = operationTimeout

	client, err := api.NewClient(*cfg)
	if err != nil {
		return nil, nil, wrapConnectionError(err)
	}

	compat := api.NewCompat(client.ServerVersion(), api.MinServerVersion)
	if compat.State() == api.DegradedWithWarning {
		output.Warning(fmt.Sprintf("manager %s is older than the minimum tested version %s; some fields may be unavailable",
			client.ServerVersion(), api.MinServerVersion))
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func resolveOutputFormat() (output.Format, error) {
	name := outputFormat
	if name == "" {
		if appCfg := loadAppConfig(); appCfg != nil && appCfg.DefaultFormat != "" {
			name = appCfg.DefaultFormat
		} else {
			name = output.FormatTable.String()
		}
	}
	return output.ParseFormat(name)
}

func outputConfig(format output.Format) output.Config {
	return output.Config{
		Color: format != output.FormatJSON && output.IsTerminal(),
	}
}

func resolveStrictFields() bool {
	if rootCmd.PersistentFlags().Changed("strict-fields") {
		return strictFields
	}
	if appCfg := loadAppConfig(); appCfg != nil {
		return appCfg.StrictFields
	}
	return false
}

func resolvePageSize(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if appCfg := loadAppConfig(); appCfg != nil && appCfg.PageSize > 0 {
		return appCfg.PageSize
	}
	return query.DefaultPageSize
}

// splitFields parses a comma-separated --fields value.
func splitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// listFlags are the projection and paging knobs shared by every list
// command.
type listFlags struct {
	fields   string
	name     string
	pageSize int
	maxItems int
}

func addListFlags(cmd *cobra.Command, opts *listFlags) {
	cmd.Flags().StringVarP(&opts.fields, "fields", "f", "",
		"comma-separated field keys to display (default: the kind's standard set)")
	cmd.Flags().StringVar(&opts.name, "name", "",
		"only show records whose name matches this glob pattern")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0,
		"records per page request (default from config, else 20)")
	cmd.Flags().IntVar(&opts.maxItems, "max-items", 0,
		"stop after fetching this many records (0 = no cap)")
}

// runResourceList is the shared list driver: resolve the projection,
// enumerate pages, stream rows through the chosen formatter, then
// flush warnings to stderr.
func runResourceList(kind string, filters map[string]string, flags *listFlags) error {
	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}

	ctx, cancel := getOperationContext()
	defer cancel()

	client, cleanup, err := newManagerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := query.Options{
		Fields:      splitFields(flags.fields),
		PageSize:    resolvePageSize(flags.pageSize),
		MaxItems:    flags.maxItems,
		Strict:      resolveStrictFields(),
		NamePattern: flags.name,
	}
	rows, err := query.List(client, registry, kind, filters, opts)
	if err != nil {
		return err
	}

	formatter, err := output.New(format, os.Stdout, outputConfig(format))
	if err != nil {
		return err
	}
	if err := formatter.Header(rows.FieldSet()); err != nil {
		return err
	}

	logger.Log.Debugw("Listing resources", "kind", kind, "filters", filters, "pageSize", opts.PageSize)

	count := 0
	for {
		row, ok, rowErr := rows.Next(ctx)
		if rowErr != nil {
			// Rows already written stay written; the stream just ends
			// here with the failure.
			output.PrintWarnings(rows.Warnings())
			return wrapConnectionError(wrapTimeoutError(rowErr))
		}
		if !ok {
			break
		}
		if err := formatter.Row(row); err != nil {
			return err
		}
		count++
	}

	total, hasTotal := rows.Total()
	sum := output.Summary{Rows: count, Total: total, HasTotal: hasTotal}
	if opts.MaxItems > 0 && rows.Fetched() >= opts.MaxItems {
		if !hasTotal || total > rows.Fetched() {
			sum.Truncated = true
		}
	}
	if err := formatter.Footer(sum); err != nil {
		return err
	}

	output.PrintWarnings(rows.Warnings())
	return nil
}

// runResourceDetail fetches and renders a single record, with a
// spinner when talking to a terminal.
func runResourceDetail(kind, id, fieldsFlag string) error {
	format, err := resolveOutputFormat()
	if err != nil {
		return err
	}

	ctx, cancel := getOperationContext()
	defer cancel()

	client, cleanup, err := newManagerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := query.Options{
		Fields: splitFields(fieldsFlag),
		Strict: resolveStrictFields(),
	}

	var (
		row      field.ProjectedRow
		warnings []string
		queryErr error
	)
	fetch := func() {
		row, _, warnings, queryErr = query.Detail(ctx, client, registry, kind, id, opts)
	}
	if output.IsTerminal() && format != output.FormatJSON {
		_ = spinner.New().Title(fmt.Sprintf("Fetching %s %s...", kind, id)).Action(fetch).Run()
	} else {
		fetch()
	}
	if queryErr != nil {
		if errors.Is(queryErr, api.ErrNotFound) {
			return fmt.Errorf("✗ no matching entry found for %s %q: %w", kind, id, api.ErrNotFound)
		}
		return wrapTimeoutError(queryErr)
	}

	if err := output.RenderDetail(os.Stdout, row, format, outputConfig(format)); err != nil {
		return err
	}
	output.PrintWarnings(warnings)
	return nil
}

// confirmAction asks before a destructive operation. The -y/--yes flag
// bypasses the prompt; a non-interactive session without -y refuses
// rather than guessing.
func confirmAction(title string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !output.IsTerminal() {
		return false, fmt.Errorf("refusing to proceed without confirmation: pass -y/--yes in non-interactive sessions")
	}
	var confirmed bool
	if err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
