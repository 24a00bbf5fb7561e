package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	items := []any{
		map[string]any{"a": 3, "b": 1},
		map[string]any{"a": 1, "b": 2},
		map[string]any{"a": 1, "b": 1},
	}

	got, err := Sort(items, []string{"a", "-b"})
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"a": 1, "b": 2},
		map[string]any{"a": 1, "b": 1},
		map[string]any{"a": 3, "b": 1},
	}, got)

	// input untouched
	assert.Equal(t, 3, items[0].(map[string]any)["a"])
}

func TestSort_Stable(t *testing.T) {
	items := []any{
		map[string]any{"k": "b", "id": 1},
		map[string]any{"k": "a", "id": 2},
		map[string]any{"k": "b", "id": 3},
		map[string]any{"k": "a", "id": 4},
	}

	got, err := Sort(items, []string{"k"})
	require.NoError(t, err)

	ids := make([]any, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.(map[string]any)["id"])
	}

	assert.Equal(t, []any{2, 4, 1, 3}, ids)
}

func TestSort_MissingKeyTies(t *testing.T) {
	items := []any{
		map[string]any{"b": 2},
		map[string]any{"a": 1, "b": 1},
	}

	got, err := Sort(items, []string{"a", "b"})
	require.NoError(t, err)

	// "a" ties because the first item lacks it; "b" decides.
	assert.Equal(t, []any{
		map[string]any{"a": 1, "b": 1},
		map[string]any{"b": 2},
	}, got)
}

func TestSort_IncomparableTies(t *testing.T) {
	items := []any{
		map[string]any{"a": "text", "id": 1},
		map[string]any{"a": 5, "id": 0},
	}

	got, err := Sort(items, []string{"a", "id"})
	require.NoError(t, err)
	assert.Equal(t, 0, got[0].(map[string]any)["id"])
}

func TestSort_NonMappingItems(t *testing.T) {
	items := []any{"x", nil, []any{1}, map[string]any{"a": 1}}

	got, err := Sort(items, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSort_KeysAreNotPaths(t *testing.T) {
	items := []any{
		map[string]any{"a.b": 2, "a": map[string]any{"b": 1}},
		map[string]any{"a.b": 1, "a": map[string]any{"b": 2}},
	}

	got, err := Sort(items, []string{"a.b"})
	require.NoError(t, err)
	assert.Equal(t, 1, got[0].(map[string]any)["a.b"])
}

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected []Column
		wantErr  bool
	}{
		{name: "ascending", columns: []string{"title"}, expected: []Column{{Key: "title"}}},
		{name: "descending", columns: []string{"-title"}, expected: []Column{{Key: "title", Desc: true}}},
		{name: "trimmed", columns: []string{" title ", "- date"}, expected: []Column{{Key: "title"}, {Key: "date", Desc: true}}},
		{name: "empty", columns: []string{""}, wantErr: true},
		{name: "bare dash", columns: []string{"-"}, wantErr: true},
		{name: "none", columns: nil, expected: []Column{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(tt.columns)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidColumn)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestColumn_String(t *testing.T) {
	assert.Equal(t, "-a", Column{Key: "a", Desc: true}.String())
	assert.Equal(t, "a", Column{Key: "a"}.String())
}
