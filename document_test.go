package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReturnsUsableDocument(t *testing.T) {
	doc := Parse([]byte(`<ul><li id="a">one</li><li class="x y">two</li></ul>`), ParserOptions{TrackIDs: true, TrackClasses: true})
	require.Len(t, doc.Children(), 1)

	h, ok := doc.GetElementByID("a")
	require.True(t, ok)
	node, _ := h.Get(doc.Parser())
	tag, _ := node.AsTag()
	require.Equal(t, "one", tag.InnerText(doc.Parser()))

	matches := doc.GetElementsByClassName("x")
	require.Len(t, matches, 1)
}

func TestDocumentQuerySelector(t *testing.T) {
	doc := Parse([]byte(`<div class="a"><span>one</span></div><div class="b"><span>two</span></div>`), ParserOptions{})
	m, err := doc.QuerySelector("div.a span")
	require.NoError(t, err)

	h, ok := m.Next()
	require.True(t, ok)
	node, _ := h.Get(doc.Parser())
	tag, _ := node.AsTag()
	require.Equal(t, "one", tag.InnerText(doc.Parser()))

	_, ok = m.Next()
	require.False(t, ok)
}

func TestDocumentOuterHTML(t *testing.T) {
	doc := Parse([]byte(`<div id="x">hi</div>`), ParserOptions{})
	require.Equal(t, `<div id="x">hi</div>`, doc.OuterHTML())
}

func TestDocumentNodesAndNodesMut(t *testing.T) {
	doc := Parse([]byte(`<p>a</p>`), ParserOptions{})
	require.Len(t, doc.Nodes(), 2) // the <p> tag and its raw text child
	require.Len(t, doc.NodesMut(), 2)
}

func TestDocumentCloseReturnsArenaToPool(t *testing.T) {
	doc := Parse([]byte(`<div><span>a</span></div>`), ParserOptions{})
	arena := doc.parser.arena
	require.Equal(t, int32(1), arena.refs.Load())

	doc.Close()
	require.Nil(t, doc.parser.arena)
	require.Equal(t, int32(0), arena.refs.Load())
}

func TestOwnedDocumentCloseReleasesUnderlyingDocument(t *testing.T) {
	owned := ParseOwned([]byte(`<p>hi</p>`), ParserOptions{})
	arena := owned.GetRef().parser.arena

	owned.Close()
	require.Equal(t, int32(0), arena.refs.Load())
}

func TestParseOwnedDoesNotAliasCallerBuffer(t *testing.T) {
	input := []byte(`<p>hi</p>`)
	owned := ParseOwned(input, ParserOptions{})
	ref := owned.GetRef()
	require.Equal(t, `<p>hi</p>`, ref.OuterHTML())

	// mutating the caller's slice must not affect the parsed document
	copy(input, []byte(`<p>ZZ</p>`))
	require.Equal(t, `<p>hi</p>`, ref.OuterHTML())
}
