package xmltree

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beevik/etree"

	"feedpipe/record"
)

// ErrNoRoot is returned for a document without a root element.
var ErrNoRoot = errors.New("document has no root element")

// Parse reads an XML document and returns its root element.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	return root(doc)
}

// ParseFile reads an XML document from path and returns its root element.
func ParseFile(path string) (*etree.Element, error) {
	doc := etree.NewDocument()

	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read XML file %s: %w", path, err)
	}

	return root(doc)
}

// Fetch loads the document at src. http and https URLs are requested with
// ctx; "file://" URLs and bare strings are read from the filesystem.
func Fetch(ctx context.Context, src string) (*etree.Element, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return ParseFile(strings.TrimPrefix(src, "file://"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", src, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", src, resp.Status)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to parse XML from %s: %w", src, err)
	}

	return root(doc)
}

func root(doc *etree.Document) (*etree.Element, error) {
	el := doc.Root()
	if el == nil {
		return nil, ErrNoRoot
	}

	return el, nil
}

// Entries returns the items of an imported RSS, RDF or Atom feed, in
// document order. Documents that are none of these yield nil.
func Entries(doc record.Value) []any {
	m, ok := doc.Mapping()
	if !ok {
		return nil
	}

	for _, path := range []string{"channel.item", "item", "entry"} {
		if v, found := record.Lookup(m, path); found {
			return record.Listize(v)
		}
	}

	return nil
}
