// Package dom provides the queryable document abstraction the scoring
// engine runs against. The engine never touches a parsing library
// directly; it only sees this narrow capability surface, implemented
// once per parser (currently goquery).
package dom

// Node is one element of a parsed page, or a synthetic container
// produced by Document.Wrap.
type Node interface {
	// Find returns all descendants matching the CSS selector, in
	// document order.
	Find(selector string) []Node
	// Is reports whether the node itself matches the selector.
	Is(selector string) bool
	// Attr returns the named attribute, or "" when absent.
	Attr(name string) string
	// Text returns the concatenated text content of the subtree.
	Text() string
	// Children returns the node's direct element children in order.
	Children() []Node
	// HTML serializes the node including its own tag.
	HTML() (string, error)
}

// Document is a parsed HTML page.
type Document interface {
	// Find returns all elements matching the selector, in document order.
	Find(selector string) []Node
	// Body returns the document body.
	Body() Node
	// Wrap builds a synthetic container holding copies of the given
	// nodes, so chunked content answers the same query API as a native
	// container.
	Wrap(nodes []Node) (Node, error)
}
