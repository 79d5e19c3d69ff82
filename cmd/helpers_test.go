package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/exit"
	"github.com/nexhub-io/nexctl/pkg/field"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "  ", want: nil},
		{name: "single", input: "id", want: []string{"id"}},
		{name: "several", input: "id,status,owner", want: []string{"id", "status", "owner"}},
		{name: "spaces trimmed", input: " id , status ", want: []string{"id", "status"}},
		{name: "empty tokens dropped", input: "id,,status,", want: []string{"id", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitFields(tt.input))
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "pinned code wins",
			err:  wrapConnectionError(errors.New("refused")),
			want: exit.ConnectionError,
		},
		{
			name: "not connected",
			err:  wrapNotConnectedError(errors.New("no context")),
			want: exit.ConnectionError,
		},
		{
			name: "unknown field",
			err:  &field.UnknownFieldError{Kind: "jobs", Key: "bogus"},
			want: exit.ValidationError,
		},
		{
			name: "empty projection",
			err:  &field.EmptyProjectionError{Kind: "jobs"},
			want: exit.ValidationError,
		},
		{
			name: "strict incompatibility",
			err:  &field.IncompatibleFieldError{Key: "owner"},
			want: exit.IncompatibleServer,
		},
		{
			name: "not found",
			err:  fmt.Errorf("job %q: %w", "j1", api.ErrNotFound),
			want: exit.NotFound,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: exit.GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestWrapTimeoutError(t *testing.T) {
	assert.NoError(t, wrapTimeoutError(nil))

	err := wrapTimeoutError(fmt.Errorf("fetch: %w", context.DeadlineExceeded))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation timed out")
	assert.Contains(t, err.Error(), "--timeout")

	plain := errors.New("refused")
	assert.Equal(t, plain, wrapTimeoutError(plain))
}

func TestResolvePageSize(t *testing.T) {
	t.Setenv("NEXCTLCONFIG", t.TempDir()+"/config.yaml")

	assert.Equal(t, 7, resolvePageSize(7), "flag value wins")
	assert.Equal(t, 20, resolvePageSize(0), "falls back to the built-in default")
}
