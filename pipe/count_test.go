package pipe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedpipe/internal/logging"
)

// countingInput yields items and records how many times it was iterated.
func countingInput(items []any, runs *int) Seq {
	return func(yield func(any, error) bool) {
		*runs++
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
	}
}

func TestCount(t *testing.T) {
	runs := 0
	out := Count(NewContext(), countingInput([]any{"x", "y", "z"}, &runs), nil, nil)

	assert.Equal(t, 0, runs, "nothing runs before the first pull")

	got, err := Take(out, 5)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 3, 3, 3, 3}, got)

	// polling again replays the cached count
	got, err = Take(out, 100)
	require.NoError(t, err)
	assert.Len(t, got, 100)
	for _, v := range got {
		assert.Equal(t, 3, v)
	}

	assert.Equal(t, 1, runs, "input is consumed exactly once")
}

func TestCount_Empty(t *testing.T) {
	got, err := Take(Count(nil, FromSlice(nil), nil, nil), 2)
	require.NoError(t, err)
	assert.Equal(t, []any{0, 0}, got)

	got, err = Take(Count(nil, nil, nil, nil), 1)
	require.NoError(t, err)
	assert.Equal(t, []any{0}, got)
}

func TestCount_InputError(t *testing.T) {
	boom := errors.New("boom")
	out := Count(nil, Failed(boom), nil, nil)

	_, err := Take(out, 3)
	require.ErrorIs(t, err, boom)

	_, err = Take(out, 3)
	require.ErrorIs(t, err, boom)
}

func TestCount_AsTerminal(t *testing.T) {
	terms := NewTerminals()
	defer terms.Close()
	terms.Add("count", Count(nil, FromSlice([]any{1, 2}), nil, nil))

	for range 3 {
		v, err := GetValue(FromTerminal("count"), nil, terms)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}
}

func TestCount_LogsWithRunID(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(WithLogger(logging.NewConsoleLoggerTo(&buf, true)))

	_, err := Take(Count(ctx, FromSlice([]any{"a", "b"}), nil, nil), 1)
	require.NoError(t, err)

	assert.Equal(t, "[VERBOSE] ["+ctx.RunID[:8]+"] count: 2 items\n", buf.String())
}

func TestContext_LoggerWithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	ctx := &Context{Logger: logging.NewConsoleLoggerTo(&buf, true)}

	ctx.logger().Info("plain %d", 1)
	assert.Equal(t, "plain 1\n", buf.String())
}
