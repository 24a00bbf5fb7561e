// Package xmltree imports parsed XML element trees into record trees.
//
// The conversion follows the shape a hosted feed engine has always produced,
// which downstream consumers rely on:
//
//   - attributes become Mapping keys (namespace declarations are dropped)
//   - child elements are keyed by local tag name; repeated tags are promoted
//     to a Sequence in document order
//   - non-blank text of an element with children, and non-blank text that
//     trails a child, is collected under "content" with the same promotion
//   - a leaf with no attributes and non-blank text becomes the text itself
//   - a leaf with attributes keeps its text under "content"
//
// Comments and processing instructions are skipped together with any text
// that follows them up to the next element.
package xmltree
