package pipe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminals(t *testing.T) {
	terms := NewTerminals()
	defer terms.Close()

	terms.Add("b-feed", FromSlice([]any{"x"}))
	terms.Add("1st", FromSlice([]any{"y"}))

	assert.Equal(t, []string{"_1st", "b_feed"}, terms.Names())
	assert.True(t, terms.Has("b-feed"))
	assert.True(t, terms.Has("b_feed"))
	assert.False(t, terms.Has("c"))

	v, err := terms.Next("1st")
	require.NoError(t, err)
	assert.Equal(t, "y", v)
}

func TestTerminals_Replace(t *testing.T) {
	terms := NewTerminals()
	defer terms.Close()

	terms.Add("t", FromSlice([]any{"old"}))
	terms.Add("t", FromSlice([]any{"new"}))

	v, err := terms.Next("t")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestTerminals_FeedError(t *testing.T) {
	boom := errors.New("boom")

	terms := NewTerminals()
	defer terms.Close()
	terms.Add("t", Failed(boom))

	_, err := terms.Next("t")
	require.ErrorIs(t, err, boom)
}

func TestTerminals_Lazy(t *testing.T) {
	pulled := 0
	feed := func(yield func(any, error) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i, nil) {
				return
			}
		}
	}

	terms := NewTerminals()
	terms.Add("n", feed)
	assert.Equal(t, 0, pulled)

	for want := range 3 {
		v, err := terms.Next("n")
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.Equal(t, 3, pulled)
	terms.Close()
}

func TestTerminals_Nil(t *testing.T) {
	var terms *Terminals

	assert.False(t, terms.Has("x"))
	assert.Nil(t, terms.Names())
	terms.Close()
}
