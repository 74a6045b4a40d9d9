package tl

// cursor is a bounded forward cursor over an input byte buffer. It mirrors
// the sourceCursor idiom used throughout the teacher's lexer bridges
// (peek/advance over an offset, never reading past the end), specialized
// here for byte-at-a-time scanning rather than token emission.
type cursor struct {
	buf []byte
	idx int
}

func newCursor(buf []byte) cursor {
	return cursor{buf: buf}
}

// isEOF reports whether the cursor has consumed the entire buffer.
func (c *cursor) isEOF() bool {
	return c.idx >= len(c.buf)
}

// current peeks the byte at the cursor without advancing. ok is false at EOF.
func (c *cursor) current() (b byte, ok bool) {
	if c.isEOF() {
		return 0, false
	}
	return c.buf[c.idx], true
}

// current1 peeks the byte at the cursor without advancing, returning 0 at
// EOF. Convenient for single-byte comparisons where EOF and "not this byte"
// are handled the same way by the caller.
func (c *cursor) current1() byte {
	b, _ := c.current()
	return b
}

// peekAt peeks the byte n positions ahead of the cursor without advancing.
// ok is false if that position is at or past EOF.
func (c *cursor) peekAt(n int) (b byte, ok bool) {
	idx := c.idx + n
	if idx < 0 || idx >= len(c.buf) {
		return 0, false
	}
	return c.buf[idx], true
}

// advance steps the cursor forward by one byte. It is a no-op at EOF.
func (c *cursor) advance() {
	if !c.isEOF() {
		c.idx++
	}
}

// slice returns buf[a:b]. Callers are responsible for keeping a and b within
// bounds; the parser only ever calls this with offsets it has itself produced.
func (c *cursor) slice(a, b int) []byte {
	return c.buf[a:b]
}

// expectAndSkip advances past the current byte iff it equals want.
func (c *cursor) expectAndSkip(want byte) bool {
	b, ok := c.current()
	if !ok || b != want {
		return false
	}
	c.advance()
	return true
}

// expectOneOfAndSkip advances past the current byte iff it is a member of
// set, returning the matched byte.
func (c *cursor) expectOneOfAndSkip(set ...byte) (byte, bool) {
	b, ok := c.current()
	if !ok {
		return 0, false
	}
	for _, w := range set {
		if b == w {
			c.advance()
			return b, true
		}
	}
	return 0, false
}

// skipWhitespace advances over ASCII whitespace, reporting whether any was
// consumed.
func (c *cursor) skipWhitespace() bool {
	skipped := false
	for {
		b, ok := c.current()
		if !ok || !isASCIISpace(b) {
			break
		}
		c.advance()
		skipped = true
	}
	return skipped
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// matchLiteral reports whether the bytes starting at the cursor's current
// position equal lit, without consuming anything. Grounded in
// HTMLTokenSource.matchLiteralAtCurrent from the teacher's html_lexer.go.
func (c *cursor) matchLiteral(lit string) bool {
	if c.idx+len(lit) > len(c.buf) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if c.buf[c.idx+i] != lit[i] {
			return false
		}
	}
	return true
}

// matchLiteralFold is matchLiteral with ASCII case-folding, used for
// case-insensitive keyword recognition (tag names, DOCTYPE, raw-text closers).
func (c *cursor) matchLiteralFold(lit string) bool {
	if c.idx+len(lit) > len(c.buf) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if asciiLower(c.buf[c.idx+i]) != asciiLower(lit[i]) {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
