package query

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/field"
	"github.com/nexhub-io/nexctl/pkg/output"
)

func jobRecords() []api.Record {
	return []api.Record{
		{"id": "j0", "name": "train-resnet", "status": "RUNNING", "created_at": "2021-05-01T09:00:00Z"},
		{"id": "j1", "name": "train-bert", "status": "TERMINATED", "created_at": "2021-05-02T09:00:00Z"},
		{"id": "j2", "name": "serve-api", "status": "RUNNING", "created_at": "2021-05-03T09:00:00Z"},
	}
}

func drainRows(t *testing.T, rows *Rows) []field.ProjectedRow {
	t.Helper()
	var out []field.ProjectedRow
	for {
		row, ok, err := rows.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, row)
	}
}

func TestListProjectsDefaults(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("20.09"))
	rows, err := List(mock, field.Builtin(), field.KindJob, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "status", "created_at"}, rows.FieldSet().Keys())

	got := drainRows(t, rows)
	require.Len(t, got, 3)
	assert.Equal(t, "j0", got[0][0].Value)
	assert.Equal(t, "RUNNING", got[0][1].Value)
	assert.Equal(t, "2021-05-01 09:00:00", got[0][2].Value)
	assert.Empty(t, rows.Warnings())
}

func TestListVersionGateWarnsOnce(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("19.09"))
	rows, err := List(mock, field.Builtin(), field.KindJob, nil, Options{
		Fields: []string{"id", "owner"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"id"}, rows.FieldSet().Keys())
	drainRows(t, rows)

	warnings := rows.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "owner dropped: requires 20.03+", warnings[0])

	// The dropped field never reaches the wire.
	for _, call := range mock.PageCalls {
		assert.Equal(t, "jobs", call.Kind)
	}
}

func TestListStrictFailsBeforeFetching(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("19.09"))
	_, err := List(mock, field.Builtin(), field.KindJob, nil, Options{
		Fields: []string{"id", "owner"},
		Strict: true,
	})

	var incompatErr *field.IncompatibleFieldError
	require.ErrorAs(t, err, &incompatErr)
	assert.Empty(t, mock.PageCalls, "a rejected selection must not fetch pages")
}

func TestListNameGlob(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("20.09"))
	rows, err := List(mock, field.Builtin(), field.KindJob, nil, Options{
		Fields:      []string{"id"},
		NamePattern: "train-*",
	})
	require.NoError(t, err)

	got := drainRows(t, rows)
	require.Len(t, got, 2)
	assert.Equal(t, "j0", got[0][0].Value)
	assert.Equal(t, "j1", got[1][0].Value)
}

func TestListBadGlob(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("20.09"))
	_, err := List(mock, field.Builtin(), field.KindJob, nil, Options{
		NamePattern: "[",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name pattern")
}

func TestListCellFailureBecomesWarning(t *testing.T) {
	recs := jobRecords()
	recs[1]["created_at"] = "garbage"
	mock := api.PagedMock(recs, api.MustVersion("20.09"))

	rows, err := List(mock, field.Builtin(), field.KindJob, nil, Options{})
	require.NoError(t, err)

	got := drainRows(t, rows)
	require.Len(t, got, 3, "a bad cell never drops its row")
	assert.Error(t, got[1][2].Err)

	warnings := rows.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "row 2, field created_at")
}

// The JSON stream must parse back into exactly the projected keys, in
// the field set's order, regardless of which columns were selected.
func TestListJSONRoundTrip(t *testing.T) {
	mock := api.PagedMock(jobRecords(), api.MustVersion("20.09"))
	rows, err := List(mock, field.Builtin(), field.KindJob, nil, Options{
		Fields: []string{"status", "id", "name"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	formatter, err := output.New(output.FormatJSON, &buf, output.Config{})
	require.NoError(t, err)

	require.NoError(t, formatter.Header(rows.FieldSet()))
	count := 0
	for _, row := range drainRows(t, rows) {
		require.NoError(t, formatter.Row(row))
		count++
	}
	require.NoError(t, formatter.Footer(output.Summary{Rows: count}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	for _, obj := range decoded {
		assert.Len(t, obj, 3)
		for _, key := range []string{"status", "id", "name"} {
			assert.Contains(t, obj, key)
		}
	}

	// Key order inside each object follows the selection, not JSON
	// library habits.
	text := buf.String()
	first := strings.Index(text, `"status"`)
	second := strings.Index(text, `"id"`)
	third := strings.Index(text, `"name"`)
	assert.True(t, first < second && second < third,
		"keys out of order in %q", text)
}

func TestDetail(t *testing.T) {
	mock := api.NewMockTransport()
	mock.Version = api.MustVersion("20.09")
	mock.FetchOneFunc = func(_ context.Context, _, id string, _ []string) (api.Record, error) {
		if id != "j1" {
			return nil, api.ErrNotFound
		}
		return api.Record{
			"id":     "j1",
			"name":   "train-bert",
			"status": "TERMINATED",
			"owner":  map[string]any{"email": "a@example.com"},
		}, nil
	}

	row, set, warnings, err := Detail(context.Background(), mock, field.Builtin(), field.KindJob, "j1", Options{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// Detail mode widens the default projection.
	assert.Contains(t, set.Keys(), "owner")
	byKey := make(map[string]any)
	for _, cell := range row {
		byKey[cell.Spec.Key] = cell.Value
	}
	assert.Equal(t, "a@example.com", byKey["owner"])

	_, _, _, err = Detail(context.Background(), mock, field.Builtin(), field.KindJob, "nope", Options{})
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestWarnings(t *testing.T) {
	w := &Warnings{}
	w.Add("row %d", 1)
	w.AddAll([]string{"a", "b"})
	assert.Equal(t, []string{fmt.Sprintf("row %d", 1), "a", "b"}, w.Entries())
}
