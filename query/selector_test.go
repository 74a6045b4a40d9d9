package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTagSelector(t *testing.T) {
	e, ok := Parse([]byte("div"))
	require.True(t, ok)
	require.Equal(t, KindTag, e.Kind)
	require.Equal(t, "div", string(e.Name))
}

func TestParseIDAndClassSelectors(t *testing.T) {
	e, ok := Parse([]byte("#main"))
	require.True(t, ok)
	require.Equal(t, KindID, e.Kind)
	require.Equal(t, "main", string(e.Name))

	e, ok = Parse([]byte(".highlight"))
	require.True(t, ok)
	require.Equal(t, KindClass, e.Kind)
	require.Equal(t, "highlight", string(e.Name))
}

func TestParseUniversalSelector(t *testing.T) {
	e, ok := Parse([]byte("*"))
	require.True(t, ok)
	require.Equal(t, KindAll, e.Kind)
}

func TestParseCompoundSelectorFoldsWithAnd(t *testing.T) {
	e, ok := Parse([]byte("div.hello#id"))
	require.True(t, ok)
	require.Equal(t, KindAnd, e.Kind)
	require.Equal(t, KindAnd, e.Left.Kind)
	require.Equal(t, KindTag, e.Left.Left.Kind)
	require.Equal(t, KindClass, e.Left.Right.Kind)
	require.Equal(t, KindID, e.Right.Kind)
}

func TestParseDescendantCombinator(t *testing.T) {
	e, ok := Parse([]byte("div span"))
	require.True(t, ok)
	require.Equal(t, KindDescendant, e.Kind)
	require.Equal(t, KindTag, e.Left.Kind)
	require.Equal(t, "div", string(e.Left.Name))
	require.Equal(t, KindTag, e.Right.Kind)
	require.Equal(t, "span", string(e.Right.Name))
}

func TestParseParentCombinatorChain(t *testing.T) {
	e, ok := Parse([]byte("div > .hi > span"))
	require.True(t, ok)
	require.Equal(t, KindParent, e.Kind)
	require.Equal(t, KindTag, e.Right.Kind)
	require.Equal(t, "span", string(e.Right.Name))

	inner := e.Left
	require.Equal(t, KindParent, inner.Kind)
	require.Equal(t, KindTag, inner.Left.Kind)
	require.Equal(t, KindClass, inner.Right.Kind)
}

func TestParseSelectorList(t *testing.T) {
	e, ok := Parse([]byte("div, span"))
	require.True(t, ok)
	require.Equal(t, KindOr, e.Kind)
	require.Equal(t, KindTag, e.Left.Kind)
	require.Equal(t, "div", string(e.Left.Name))
	require.Equal(t, KindTag, e.Right.Kind)
	require.Equal(t, "span", string(e.Right.Name))
}

func TestParseAttributeSelectors(t *testing.T) {
	cases := []struct {
		sel   string
		kind  Kind
		name  string
		value string
	}{
		{`[disabled]`, KindAttribute, "disabled", ""},
		{`[href="a"]`, KindAttributeValue, "href", "a"},
		{`[class~=foo]`, KindAttributeValueWhitespacedContains, "class", "foo"},
		{`[src^='http']`, KindAttributeValueStartsWith, "src", "http"},
		{`[src$=".png"]`, KindAttributeValueEndsWith, "src", ".png"},
		{`[title*=note]`, KindAttributeValueSubstring, "title", "note"},
	}
	for _, tc := range cases {
		t.Run(tc.sel, func(t *testing.T) {
			e, ok := Parse([]byte(tc.sel))
			require.True(t, ok)
			require.Equal(t, tc.kind, e.Kind)
			require.Equal(t, tc.name, string(e.Name))
			require.Equal(t, tc.value, string(e.Value))
		})
	}
}

func TestParseAttributeValueQuoteBalancingRequiresMatchingQuote(t *testing.T) {
	p := &parser{buf: []byte(`href="a']`)}
	_, ok := p.parseAttribute()
	require.False(t, ok)
}

func TestParseEmptyInputFails(t *testing.T) {
	_, ok := Parse([]byte(""))
	require.False(t, ok)
}

func TestParseUnterminatedAttributeFails(t *testing.T) {
	_, ok := Parse([]byte(`[href=`))
	require.False(t, ok)
}
