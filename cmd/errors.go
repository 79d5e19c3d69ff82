package cmd

import (
	"fmt"

	"github.com/nexhub-io/nexctl/pkg/exit"
)

// exitErr pins a specific exit code onto an error.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

// wrapNotConnectedError returns a standardized error for when the
// manager connection fails due to missing or invalid context
// configuration.
func wrapNotConnectedError(err error) error {
	return &exitErr{
		code: exit.ConnectionError,
		err:  fmt.Errorf("✗ not connected: %w\n\nUse 'nexctl login' to configure a manager endpoint", err),
	}
}

// wrapConnectionError marks a transport failure with the connection
// exit code.
func wrapConnectionError(err error) error {
	return &exitErr{code: exit.ConnectionError, err: err}
}
