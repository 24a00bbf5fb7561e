package pipe

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Example</title>
  <entry><title>Second</title><updated>2024-02-01</updated></entry>
  <entry><title>First</title><updated>2024-01-01</updated></entry>
</feed>`

func TestFetch_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.xml")
	require.NoError(t, os.WriteFile(path, []byte(atomFeed), 0o644))

	got, err := Take(Fetch(NewContext(), nil, Conf{"url": map[string]any{"value": path}}, nil), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Second", "First"}, titles(got))
}

func TestFetch_HTTPIntoSortAndCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(atomFeed))
	}))
	defer srv.Close()

	ctx := NewContext()
	fetched := Fetch(ctx, nil, Conf{"url": map[string]any{"value": srv.URL}}, nil)
	sorted := Sort(ctx, fetched, Conf{"KEY": map[string]any{"field": "updated"}}, nil)

	got, err := Take(sorted, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"First", "Second"}, titles(got))

	fetched = Fetch(ctx, nil, Conf{"url": srv.URL}, nil)
	n, err := Take(Count(ctx, fetched, nil, nil), 1)
	require.NoError(t, err)
	assert.Equal(t, []any{2}, n)
}

func TestFetch_Errors(t *testing.T) {
	_, err := Take(Fetch(nil, nil, Conf{}, nil), 0)
	require.ErrorIs(t, err, ErrMissingConf)

	_, err = Take(Fetch(nil, nil, Conf{"url": filepath.Join(t.TempDir(), "none.xml")}, nil), 0)
	require.Error(t, err)
}
