package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsIdent(t *testing.T) {
	for _, b := range []byte("abcXYZ019-_:+/") {
		require.True(t, isIdent(b), "byte %q should be an ident byte", b)
	}
	for _, b := range []byte(" \t<>=\"'") {
		require.False(t, isIdent(b), "byte %q should not be an ident byte", b)
	}
}

func TestMatchesCaseInsensitive(t *testing.T) {
	require.True(t, matchesCaseInsensitive([]byte("DIV"), "div"))
	require.True(t, matchesCaseInsensitive([]byte("Script"), "script"))
	require.False(t, matchesCaseInsensitive([]byte("divs"), "div"))
	require.False(t, matchesCaseInsensitive([]byte("spn"), "span"))
}

func TestFind(t *testing.T) {
	idx, ok := find([]byte("abc>def"), '>')
	require.True(t, ok)
	require.Equal(t, 3, idx)

	_, ok = find([]byte("abcdef"), '>')
	require.False(t, ok)
}

func TestFind4(t *testing.T) {
	idx, ok := find4([]byte("name'value"), [4]byte{'>', '"', '\'', '='})
	require.True(t, ok)
	require.Equal(t, 4, idx)

	_, ok = find4([]byte("plain"), [4]byte{'>', '"', '\'', '='})
	require.False(t, ok)
}

func TestSearchNonIdent(t *testing.T) {
	idx, ok := searchNonIdent([]byte("div class"))
	require.True(t, ok)
	require.Equal(t, 3, idx)

	_, ok = searchNonIdent([]byte("div"))
	require.False(t, ok)

	idx, ok = searchNonIdent([]byte(""))
	require.False(t, ok)
	require.Equal(t, 0, idx)
}
