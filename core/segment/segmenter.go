// Package segment partitions the page body into the ordered content
// blocks that granular scoring runs over. Native <section> containers
// win because explicit sectioning reflects author intent; pages without
// them are chunked around their H2 headings instead.
package segment

import (
	"fmt"

	"github.com/gaurav-prasanna/claritycompass/core/dom"
)

// Block is one labeled content block of the page body.
type Block struct {
	Label string
	Root  dom.Node
}

// Split produces the ordered blocks of the document body.
//
// Documents with native <section> containers never fall back to heading
// chunking, even when H2s are present. An empty body yields zero blocks,
// not an error.
func Split(doc dom.Document) ([]Block, error) {
	native := doc.Find("section")
	if len(native) > 0 {
		blocks := make([]Block, len(native))
		for i, root := range native {
			blocks[i] = Block{Label: fmt.Sprintf("Section %d", i+1), Root: root}
		}
		return blocks, nil
	}

	// Fallback: accumulate body children, closing a chunk whenever an H2
	// starts a new one. The trailing buffer becomes the final chunk.
	var chunks [][]dom.Node
	var buf []dom.Node
	for _, child := range doc.Body().Children() {
		if child.Is("h2") && len(buf) > 0 {
			chunks = append(chunks, buf)
			buf = []dom.Node{child}
			continue
		}
		buf = append(buf, child)
	}
	if len(buf) > 0 {
		chunks = append(chunks, buf)
	}

	blocks := make([]Block, 0, len(chunks))
	for i, group := range chunks {
		root, err := doc.Wrap(group)
		if err != nil {
			return nil, fmt.Errorf("wrapping block %d: %w", i+1, err)
		}
		blocks = append(blocks, Block{Label: fmt.Sprintf("Block %d", i+1), Root: root})
	}
	return blocks, nil
}
