package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorCurrentAndAdvance(t *testing.T) {
	c := newCursor([]byte("ab"))
	b, ok := c.current()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)

	c.advance()
	b, ok = c.current()
	require.True(t, ok)
	require.Equal(t, byte('b'), b)

	c.advance()
	require.True(t, c.isEOF())
	_, ok = c.current()
	require.False(t, ok)
	require.Equal(t, byte(0), c.current1())
}

func TestCursorPeekAt(t *testing.T) {
	c := newCursor([]byte("abc"))
	b, ok := c.peekAt(1)
	require.True(t, ok)
	require.Equal(t, byte('b'), b)

	_, ok = c.peekAt(10)
	require.False(t, ok)

	_, ok = c.peekAt(-1)
	require.False(t, ok)
}

func TestCursorExpectAndSkip(t *testing.T) {
	c := newCursor([]byte(">rest"))
	require.True(t, c.expectAndSkip('>'))
	require.Equal(t, 1, c.idx)
	require.False(t, c.expectAndSkip('>'))
}

func TestCursorExpectOneOfAndSkip(t *testing.T) {
	c := newCursor([]byte(`'value'`))
	b, ok := c.expectOneOfAndSkip('"', '\'')
	require.True(t, ok)
	require.Equal(t, byte('\''), b)
}

func TestCursorSkipWhitespace(t *testing.T) {
	c := newCursor([]byte("   x"))
	skipped := c.skipWhitespace()
	require.True(t, skipped)
	require.Equal(t, 3, c.idx)

	skipped = c.skipWhitespace()
	require.False(t, skipped)
}

func TestCursorMatchLiteral(t *testing.T) {
	c := newCursor([]byte("<!--comment-->"))
	require.True(t, c.matchLiteral("<!--"))
	require.False(t, c.matchLiteral("<!DOCTYPE"))

	c2 := newCursor([]byte("short"))
	require.False(t, c2.matchLiteral("shorter than this"))
}

func TestCursorMatchLiteralFold(t *testing.T) {
	c := newCursor([]byte("DOCTYPE html"))
	require.True(t, c.matchLiteralFold("doctype"))
	require.True(t, c.matchLiteralFold("DOCTYPE"))
	require.False(t, c.matchLiteralFold("doctypex"))
}

func TestAsciiLower(t *testing.T) {
	require.Equal(t, byte('a'), asciiLower('A'))
	require.Equal(t, byte('z'), asciiLower('z'))
	require.Equal(t, byte('1'), asciiLower('1'))
}
