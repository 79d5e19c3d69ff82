package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhub-io/nexctl/pkg/field"
)

func tableTestSet() field.FieldSet {
	return field.FieldSet{
		{Key: "id", WirePath: "id", DisplayName: "ID"},
		{Key: "status", WirePath: "status", DisplayName: "Status"},
	}
}

func TestTableRendersHeadersAndRows(t *testing.T) {
	set := tableTestSet()
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{})
	require.NoError(t, err)

	require.NoError(t, f.Header(set))
	require.NoError(t, f.Row(field.ProjectedRow{
		{Spec: set[0], Value: "j1"},
		{Spec: set[1], Value: "RUNNING"},
	}))
	require.NoError(t, f.Footer(Summary{Rows: 1, Total: 1, HasTotal: true}))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "j1")
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "1 of 1 rows")
}

func TestTablePlaceholders(t *testing.T) {
	set := tableTestSet()
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{})
	require.NoError(t, err)

	require.NoError(t, f.Header(set))
	require.NoError(t, f.Row(field.ProjectedRow{
		{Spec: set[0], Value: nil},
		{Spec: set[1], Err: errors.New("boom")},
	}))
	require.NoError(t, f.Footer(Summary{Rows: 1}))

	out := buf.String()
	assert.Contains(t, out, "(null)")
	assert.Contains(t, out, "(error)")
}

func TestTableCustomNullText(t *testing.T) {
	set := tableTestSet()
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{NullText: "-"})
	require.NoError(t, err)

	require.NoError(t, f.Header(set))
	require.NoError(t, f.Row(field.ProjectedRow{
		{Spec: set[0], Value: "j1"},
		{Spec: set[1], Value: nil},
	}))
	require.NoError(t, f.Footer(Summary{Rows: 1}))

	assert.NotContains(t, buf.String(), "(null)")
}

func TestTableEmptyListing(t *testing.T) {
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{})
	require.NoError(t, err)

	require.NoError(t, f.Header(tableTestSet()))
	require.NoError(t, f.Footer(Summary{}))

	assert.Equal(t, "No matching items.\n", buf.String())
}

func TestTableTruncationHint(t *testing.T) {
	set := tableTestSet()
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{})
	require.NoError(t, err)

	require.NoError(t, f.Header(set))
	require.NoError(t, f.Row(field.ProjectedRow{
		{Spec: set[0], Value: "j1"},
		{Spec: set[1], Value: "RUNNING"},
	}))
	require.NoError(t, f.Footer(Summary{Rows: 1, Total: 40, HasTotal: true, Truncated: true}))

	out := buf.String()
	assert.Contains(t, out, "1 of 40 rows")
	assert.Contains(t, out, "raise --max-items")
}

func TestTableClampsOversizedCells(t *testing.T) {
	set := tableTestSet()
	var buf bytes.Buffer
	f, err := New(FormatTable, &buf, Config{})
	require.NoError(t, err)

	require.NoError(t, f.Header(set))
	require.NoError(t, f.Row(field.ProjectedRow{
		{Spec: set[0], Value: strings.Repeat("x", 200)},
		{Spec: set[1], Value: "RUNNING"},
	}))
	require.NoError(t, f.Footer(Summary{Rows: 1}))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), maxTableCell+40,
			"one long value must not blow up the table")
	}
	assert.Contains(t, buf.String(), "...")
}
