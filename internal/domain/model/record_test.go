package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordID(t *testing.T) {
	id, ok := Record{"id": json.Number("1700000000123")}.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000123), id)

	id, ok = Record{"id": int64(42)}.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = Record{"id": "42"}.ID()
	assert.False(t, ok)

	_, ok = Record{}.ID()
	assert.False(t, ok)
}

func TestNormalizeProducesPlainJSONTypes(t *testing.T) {
	rec, err := Normalize(Record{
		"id":     int64(1700000000123),
		"skills": []string{"go"},
		"projects": []Project{
			{Title: "CLI", Technologies: []string{"go"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, json.Number("1700000000123"), rec["id"])
	assert.Equal(t, []any{"go"}, rec["skills"])

	projects, ok := rec["projects"].([]any)
	require.True(t, ok)
	project, ok := projects[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CLI", project["title"])
}
