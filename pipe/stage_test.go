package pipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}

	_, err := Lookup("cuont")
	require.ErrorIs(t, err, ErrUnknownStage)
	assert.Contains(t, err.Error(), `did you mean "count"?`)

	_, err = Lookup("zzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownStage)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"count", "fetch", "sort", "textinput"}, Names())
}

func TestTake(t *testing.T) {
	got, err := Take(FromSlice([]any{1, 2, 3}), 2)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	got, err = Take(FromSlice([]any{1, 2, 3}), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	got, err = Take(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
