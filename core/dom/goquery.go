package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse builds a Document from raw HTML.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &goqueryDocument{doc: doc}, nil
}

// ParseString builds a Document from an HTML string.
func ParseString(html string) (Document, error) {
	return Parse(strings.NewReader(html))
}

type goqueryDocument struct {
	doc *goquery.Document
}

func (d *goqueryDocument) Find(selector string) []Node {
	return splitNodes(d.doc.Find(selector))
}

func (d *goqueryDocument) Body() Node {
	return &goqueryNode{sel: d.doc.Find("body").First()}
}

// Wrap serializes the nodes and reparses them under a synthetic <wrap>
// element, detached from the original document.
func (d *goqueryDocument) Wrap(nodes []Node) (Node, error) {
	var b strings.Builder
	for i, n := range nodes {
		html, err := n.HTML()
		if err != nil {
			return nil, fmt.Errorf("serializing node %d: %w", i+1, err)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(html)
	}

	wrapped, err := goquery.NewDocumentFromReader(strings.NewReader("<wrap>" + b.String() + "</wrap>"))
	if err != nil {
		return nil, fmt.Errorf("parsing wrapped chunk: %w", err)
	}
	return &goqueryNode{sel: wrapped.Find("wrap").First()}, nil
}

type goqueryNode struct {
	sel *goquery.Selection
}

func (n *goqueryNode) Find(selector string) []Node {
	return splitNodes(n.sel.Find(selector))
}

func (n *goqueryNode) Is(selector string) bool {
	return n.sel.Is(selector)
}

func (n *goqueryNode) Attr(name string) string {
	val, _ := n.sel.Attr(name)
	return val
}

func (n *goqueryNode) Text() string {
	return n.sel.Text()
}

func (n *goqueryNode) Children() []Node {
	return splitNodes(n.sel.Children())
}

func (n *goqueryNode) HTML() (string, error) {
	return goquery.OuterHtml(n.sel)
}

// splitNodes fans a multi-element selection out into one Node per element.
func splitNodes(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &goqueryNode{sel: s})
	})
	return nodes
}
