package xmltree

import (
	"strings"

	"github.com/beevik/etree"

	"feedpipe/record"
)

// ContentKey holds element text in an imported Mapping.
const ContentKey = "content"

// Import converts el and its descendants into a record tree.
//
// The result is a Scalar for a leaf with only text, otherwise a Mapping.
// Sequences appear only as values inside a Mapping, where repeated children
// or text fragments were promoted.
func Import(el *etree.Element) record.Value {
	node := attributes(el)
	text, children, leaf := split(el)

	if leaf {
		if !hasText(text) {
			return record.Mapping(node)
		}

		if len(node) == 0 {
			return record.Scalar(text)
		}

		node[ContentKey] = text

		return record.Mapping(node)
	}

	if hasText(text) {
		node[ContentKey] = text
	}

	for _, c := range children {
		prev, ok := node[c.el.Tag]
		node[c.el.Tag] = record.Append(prev, Import(c.el).Raw(), ok)

		if hasText(c.tail) {
			prev, ok := node[ContentKey]
			node[ContentKey] = record.Append(prev, c.tail, ok)
		}
	}

	return record.Mapping(node)
}

type child struct {
	el   *etree.Element
	tail string
}

// split returns the leading text of el and its child elements with their
// tails. Comments and processing instructions are nodes too: they end the
// leading text, take the character data after them, and make el a
// non-leaf even when it has no child elements.
func split(el *etree.Element) (string, []child, bool) {
	var (
		text     strings.Builder
		children []child
		nodes    int
		skipping bool
	)

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			children = append(children, child{el: t})
			nodes++
			skipping = false
		case *etree.CharData:
			switch {
			case skipping:
			case nodes == 0:
				text.WriteString(t.Data)
			default:
				children[len(children)-1].tail += t.Data
			}
		default:
			nodes++
			skipping = true
		}
	}

	return text.String(), children, nodes == 0
}

func attributes(el *etree.Element) map[string]any {
	node := make(map[string]any, len(el.Attr))

	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}

		key := a.Key
		if a.Space != "" {
			key = a.Space + ":" + a.Key
		}

		node[key] = a.Value
	}

	return node
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
