package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/field"
)

func TestProjectNestedPath(t *testing.T) {
	fs := field.FieldSet{
		{Key: "id", WirePath: "id"},
		{Key: "owner", WirePath: "owner.email"},
	}
	rec := api.Record{
		"id":    "j1",
		"owner": map[string]any{"email": "a@example.com"},
	}

	row := Project(rec, fs)
	require.Len(t, row, 2)
	assert.Equal(t, "j1", row[0].Value)
	assert.Equal(t, "a@example.com", row[1].Value)
}

func TestProjectMissingValueIsNil(t *testing.T) {
	fs := field.FieldSet{
		{Key: "id", WirePath: "id"},
		{Key: "owner", WirePath: "owner.email"},
		{Key: "region", WirePath: "region"},
	}
	rec := api.Record{
		"id":    "j1",
		"owner": "not-an-object",
	}

	row := Project(rec, fs)
	assert.Equal(t, "j1", row[0].Value)
	assert.Nil(t, row[1].Value, "non-object under a nested path yields nil")
	assert.NoError(t, row[1].Err)
	assert.Nil(t, row[2].Value, "absent key yields nil")
}

func TestProjectTransformFailureStaysLocal(t *testing.T) {
	fs := field.FieldSet{
		{Key: "id", WirePath: "id"},
		{Key: "created_at", WirePath: "created_at", Transform: field.ShortTimestamp},
		{Key: "status", WirePath: "status"},
	}
	rec := api.Record{
		"id":         "j1",
		"created_at": "not a timestamp",
		"status":     "RUNNING",
	}

	row := Project(rec, fs)
	assert.Equal(t, "j1", row[0].Value)
	assert.Error(t, row[1].Err)
	assert.Equal(t, "RUNNING", row[2].Value, "neighboring cells are unaffected")
}

func TestProjectAlignsWithFieldSetOrder(t *testing.T) {
	fs := field.FieldSet{
		{Key: "b", WirePath: "b"},
		{Key: "a", WirePath: "a"},
	}
	row := Project(api.Record{"a": 1, "b": 2}, fs)
	assert.Equal(t, "b", row[0].Spec.Key)
	assert.Equal(t, "a", row[1].Spec.Key)
}
