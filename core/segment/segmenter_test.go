package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/claritycompass/core/dom"
)

func parse(t *testing.T, html string) dom.Document {
	t.Helper()
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	return doc
}

func TestSplitNativeSections(t *testing.T) {
	doc := parse(t, `<html><body>
		<section><h2>Hero</h2><p>First block.</p></section>
		<section><p>Second block.</p></section>
	</body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Section 1", blocks[0].Label)
	assert.Equal(t, "Section 2", blocks[1].Label)
	assert.Contains(t, blocks[0].Root.Text(), "First block.")
	assert.Contains(t, blocks[1].Root.Text(), "Second block.")
}

func TestSplitNativeSectionsWinOverHeadings(t *testing.T) {
	// H2s outside the sections must not trigger heading chunking.
	doc := parse(t, `<html><body>
		<h2>Stray heading</h2>
		<section><p>Only block.</p></section>
		<h2>Another stray</h2>
	</body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Section 1", blocks[0].Label)
}

func TestSplitHeadingFallback(t *testing.T) {
	doc := parse(t, `<html><body>
		<p>Intro copy.</p>
		<h2>Features</h2>
		<p>Feature copy.</p>
		<h2>Pricing</h2>
		<p>Pricing copy.</p>
	</body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "Block 1", blocks[0].Label)
	assert.Equal(t, "Block 2", blocks[1].Label)
	assert.Equal(t, "Block 3", blocks[2].Label)

	assert.Contains(t, blocks[0].Root.Text(), "Intro copy.")
	// Each chunk starts with the heading that opened it.
	assert.Contains(t, blocks[1].Root.Text(), "Features")
	assert.Contains(t, blocks[1].Root.Text(), "Feature copy.")
	assert.Contains(t, blocks[2].Root.Text(), "Pricing copy.")
}

func TestSplitLeadingH2StartsFirstChunk(t *testing.T) {
	// An H2 with an empty buffer opens the first chunk instead of
	// closing an empty one.
	doc := parse(t, `<html><body>
		<h2>Top</h2>
		<p>Body.</p>
	</body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
}

func TestSplitNoSectionsNoHeadings(t *testing.T) {
	// Whole body becomes exactly one fallback chunk.
	doc := parse(t, `<html><body><p>Hello.</p><div>World.</div></body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Block 1", blocks[0].Label)
	assert.Contains(t, blocks[0].Root.Text(), "Hello.")
	assert.Contains(t, blocks[0].Root.Text(), "World.")
}

func TestSplitEmptyBody(t *testing.T) {
	doc := parse(t, `<html><body></body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestSplitChunkAnswersQueries(t *testing.T) {
	// Synthetic containers answer the same query API as native ones.
	doc := parse(t, `<html><body>
		<h2>Act</h2>
		<p>Copy.</p>
		<button>Sign up</button>
	</body></html>`)

	blocks, err := Split(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].Root.Find("h2"), 1)
	assert.Len(t, blocks[0].Root.Find("button"), 1)
}
