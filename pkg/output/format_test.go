package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "simple", "json"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format: yaml")
	assert.Contains(t, err.Error(), "table, simple, json")
}

func TestNewRejectsUnsupportedFormat(t *testing.T) {
	_, err := New(Format("csv"), nil, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "csv"`)
}
