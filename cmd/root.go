package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/config"
	"github.com/nexhub-io/nexctl/pkg/exit"
	"github.com/nexhub-io/nexctl/pkg/field"
	"github.com/nexhub-io/nexctl/pkg/logger"
)

var (
	logLevel         string
	contextName      string
	outputFormat     string
	operationTimeout time.Duration
	strictFields     bool
	assumeYes        bool

	// registry is the process-wide field catalog: built once here,
	// immutable afterward, and handed to the query layer by reference.
	registry = field.Builtin()

	rootCmd = &cobra.Command{
		Use:   "nexctl",
		Short: "Nexus cluster admin CLI",
		Long: `nexctl is a command-line client for the Nexus cluster manager API.

It lists and inspects compute jobs, nodes, images, and users with a
configurable field projection, and renders results as styled tables or
machine-readable JSON.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error) - overrides config file")
	rootCmd.PersistentFlags().StringVar(&contextName, "context", "",
		"context to use for the manager connection (overrides current context)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "",
		"output format (table, simple, json)")
	rootCmd.PersistentFlags().DurationVar(&operationTimeout, "timeout", 30*time.Second,
		"timeout for manager operations (e.g., 30s, 1m, 2m30s)")
	rootCmd.PersistentFlags().BoolVar(&strictFields, "strict-fields", false,
		"fail instead of warn when a requested field needs a newer server")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"skip confirmation prompts for destructive operations")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	var unknownField *field.UnknownFieldError
	var emptyProjection *field.EmptyProjectionError
	var incompatible *field.IncompatibleFieldError
	switch {
	case errors.As(err, &unknownField), errors.As(err, &emptyProjection):
		return exit.ValidationError
	case errors.As(err, &incompatible):
		return exit.IncompatibleServer
	case errors.Is(err, api.ErrNotFound):
		return exit.NotFound
	default:
		return exit.GeneralError
	}
}

func configureLogging() {
	effectiveLogLevel := "warn"

	cfg, err := config.LoadConfig()
	if err == nil && cfg.LogLevel != "" {
		effectiveLogLevel = cfg.LogLevel
	}

	if logLevel != "" {
		effectiveLogLevel = logLevel
	}

	logger.SetLevel(effectiveLogLevel)
}
