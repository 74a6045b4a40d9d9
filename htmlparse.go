package tl

// voidElements names tags that never have children, regardless of whether
// they were written with a self-closing slash, an explicit (ignored) closing
// tag, or neither (§4.F).
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements names tags whose content is captured verbatim, without
// recursive tag parsing, up to their matching closing tag (§4.F).
var rawTextElements = map[string]bool{
	"script": true, "style": true, "title": true, "textarea": true,
}

// openFrame is one entry in the tree builder's stack of tags still awaiting
// a closing tag.
type openFrame struct {
	handle    Handle
	lowerName string
	children  []Handle
	rawStart  int
}

// treeBuilder drives the single-pass tokenize-and-build walk over the input
// that produces a Parser's arena contents (component F). It is the direct
// tree-building analogue of HTMLTokenSource.Next in
// odvcencio-gotreesitter/grammars/html_lexer.go: the same comment / tag /
// text dispatch loop, adapted to append straight into an arena-backed tree
// instead of emitting tokens for an external GLR driver.
type treeBuilder struct {
	p     *Parser
	cur   cursor
	stack []openFrame
	roots []Handle
}

func buildTree(input []byte, p *Parser) []Handle {
	b := &treeBuilder{p: p, cur: newCursor(input)}
	for !b.cur.isEOF() {
		b.step()
	}
	b.flushOpenFrames()
	return b.roots
}

// container returns the handle slice that new sibling nodes should be
// appended to: the innermost open tag's children, or the document root list.
func (b *treeBuilder) container() *[]Handle {
	if len(b.stack) == 0 {
		return &b.roots
	}
	return &b.stack[len(b.stack)-1].children
}

func (b *treeBuilder) appendChild(h Handle) {
	*b.container() = append(*b.container(), h)
	if len(b.stack) > 0 {
		b.p.setParent(h, b.stack[len(b.stack)-1].handle)
	}
}

// looksLikeMarkup reports whether the '<' at the cursor's current position
// begins a comment, markup declaration, closing tag, or opening tag, as
// opposed to being literal text.
func (b *treeBuilder) looksLikeMarkup() bool {
	c := &b.cur
	if c.matchLiteral("<!--") || c.matchLiteral("<!") || c.matchLiteral("</") {
		return true
	}
	if nb, ok := c.peekAt(1); ok && isIdent(nb) {
		return true
	}
	return false
}

func (b *treeBuilder) step() {
	if b.cur.current1() == '<' && b.looksLikeMarkup() {
		switch {
		case b.cur.matchLiteral("<!--"):
			b.readComment()
		case b.cur.matchLiteral("<!"):
			b.readMarkupDeclaration()
		case b.cur.matchLiteral("</"):
			b.readClosingTag()
		default:
			b.readOpeningTag()
		}
		return
	}
	b.readText()
}

func (b *treeBuilder) readText() {
	start := b.cur.idx
	b.cur.advance()
	for !b.cur.isEOF() {
		if b.cur.current1() == '<' && b.looksLikeMarkup() {
			break
		}
		b.cur.advance()
	}
	if b.cur.idx > start {
		h, err := b.p.pushRaw(BytesFromSlice(b.cur.slice(start, b.cur.idx)))
		if err == nil {
			b.appendChild(h)
		}
	}
}

func (b *treeBuilder) readComment() {
	start := b.cur.idx
	b.advanceN(4) // "<!--"
	for !b.cur.isEOF() && !b.cur.matchLiteral("-->") {
		b.cur.advance()
	}
	if b.cur.matchLiteral("-->") {
		b.advanceN(3)
	}
	h, err := b.p.pushComment(BytesFromSlice(b.cur.slice(start, b.cur.idx)))
	if err == nil {
		b.appendChild(h)
	}
}

// readMarkupDeclaration handles "<!...>": a DOCTYPE when the keyword matches
// (classified for Document.Version), or any other bogus declaration, which
// is simply discarded (§7, §8 html5 test).
func (b *treeBuilder) readMarkupDeclaration() {
	b.advanceN(2) // "<!"
	if b.cur.matchLiteralFold("DOCTYPE") {
		b.advanceN(len("DOCTYPE"))
		bodyStart := b.cur.idx
		bodyEnd := b.scanToGT()
		if !b.p.hasVersion {
			b.p.version = classifyDoctype(b.cur.slice(bodyStart, bodyEnd))
			b.p.hasVersion = true
		}
	} else {
		b.scanToGT()
	}
	b.consumeGT()
}

// readClosingTag closes the nearest open ancestor whose name matches, if
// any; a closer with no matching open tag (including one for a void element,
// which never reaches the stack) is a stray and is simply dropped (§7).
func (b *treeBuilder) readClosingTag() {
	b.advanceN(2) // "</"
	nameStart := b.cur.idx
	b.scanIdentRun()
	name := asciiLowerString(b.cur.slice(nameStart, b.cur.idx))
	b.scanToGT()
	b.consumeGT()

	depth := -1
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].lowerName == name {
			depth = i
			break
		}
	}
	if depth < 0 {
		return
	}
	for len(b.stack) > depth {
		b.popFrame(b.cur.idx)
	}
}

func (b *treeBuilder) popFrame(rawEnd int) {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.finalizeTag(top, rawEnd)
}

func (b *treeBuilder) finalizeTag(f openFrame, rawEnd int) {
	node, ok := f.handle.Get(b.p)
	if !ok {
		return
	}
	tag := &node.tag
	tag.children.top = f.children
	tag.rawStart = f.rawStart
	tag.rawEnd = rawEnd
	tag.raw = BytesFromSlice(b.cur.slice(f.rawStart, rawEnd))
	b.p.indexTag(f.handle, tag)
}

func (b *treeBuilder) flushOpenFrames() {
	for len(b.stack) > 0 {
		b.popFrame(b.cur.idx)
	}
}

func (b *treeBuilder) readOpeningTag() {
	start := b.cur.idx
	b.cur.advance() // '<'
	nameStart := b.cur.idx
	b.scanIdentRun()
	name := b.cur.slice(nameStart, b.cur.idx)
	lowerName := asciiLowerString(name)

	tag := Tag{name: BytesFromSlice(name)}
	b.readAttributes(&tag.attributes)

	if b.cur.isEOF() {
		// Abrupt stop: the tag never closed (§7, tag_raw_abrupt_stop). Left
		// on the open stack, it is finalized like any other unclosed tag
		// once the top-level loop reaches EOF.
		b.push(tag, start, lowerName)
		return
	}

	selfClosingWritten := false
	if b.cur.matchLiteral("/>") {
		selfClosingWritten = true
		b.advanceN(2)
	} else {
		b.cur.expectAndSkip('>')
	}
	tag.selfClosing = selfClosingWritten
	tag.void = voidElements[lowerName]

	if tag.void || selfClosingWritten {
		tag.rawStart = start
		tag.rawEnd = b.cur.idx
		tag.raw = BytesFromSlice(b.cur.slice(start, b.cur.idx))
		h, err := b.p.pushTag(tag)
		if err != nil {
			return
		}
		node, _ := h.Get(b.p)
		b.p.indexTag(h, &node.tag)
		b.appendChild(h)
		return
	}

	if rawTextElements[lowerName] {
		b.readRawTextTag(tag, start, lowerName)
		return
	}

	b.push(tag, start, lowerName)
}

// push commits a tag that may have children and puts it on the open stack.
func (b *treeBuilder) push(tag Tag, rawStart int, lowerName string) {
	h, err := b.p.pushTag(tag)
	if err != nil {
		return
	}
	b.appendChild(h)
	b.stack = append(b.stack, openFrame{handle: h, lowerName: lowerName, rawStart: rawStart})
}

// readRawTextTag captures a script/style/title/textarea body verbatim and
// consumes its matching closing tag without recursive parsing (§4.F).
func (b *treeBuilder) readRawTextTag(tag Tag, rawStart int, lowerName string) {
	textStart := b.cur.idx
	closer := "</" + lowerName
	for !b.cur.isEOF() && !b.cur.matchLiteralFold(closer) {
		b.cur.advance()
	}
	textEnd := b.cur.idx

	h, err := b.p.pushTag(tag)
	if err != nil {
		return
	}
	b.appendChild(h)

	if textEnd > textStart {
		childH, err := b.p.pushRaw(BytesFromSlice(b.cur.slice(textStart, textEnd)))
		if err == nil {
			b.p.setParent(childH, h)
			node, _ := h.Get(b.p)
			node.tag.children.top = []Handle{childH}
		}
	}

	if b.cur.matchLiteralFold(closer) {
		b.advanceN(len(closer))
		b.scanToGT()
		b.consumeGT()
	}

	node, _ := h.Get(b.p)
	node.tag.rawStart = rawStart
	node.tag.rawEnd = b.cur.idx
	node.tag.raw = BytesFromSlice(b.cur.slice(rawStart, b.cur.idx))
	b.p.indexTag(h, &node.tag)
}

// readAttributes parses zero or more name[=value] pairs up to (not
// including) the tag's terminating '/' or '>'.
func (b *treeBuilder) readAttributes(into *AttributeMap) {
	for {
		b.cur.skipWhitespace()
		if b.cur.isEOF() || b.cur.matchLiteral("/>") || b.cur.current1() == '>' {
			return
		}
		nameStart := b.cur.idx
		b.scanIdentRun()
		if b.cur.idx == nameStart {
			// Unexpected byte that starts neither an identifier nor a
			// recognized terminator; skip forward to the next attribute
			// boundary using the same four-byte scan the SIMD contract
			// describes (§4.B). find4 would match the current byte itself
			// at offset 0, so search past it to guarantee progress (§1, §8).
			rest := b.cur.buf[b.cur.idx+1:]
			if off, ok := find4(rest, [4]byte{'>', '"', '\'', '='}); ok {
				b.cur.idx += off + 1
			} else {
				b.cur.idx = len(b.cur.buf)
			}
			continue
		}
		name := b.cur.slice(nameStart, b.cur.idx)

		b.cur.skipWhitespace()
		if b.cur.current1() != '=' {
			into.Insert(name, Bytes{}, false)
			continue
		}
		b.cur.advance() // '='
		b.cur.skipWhitespace()

		if q, ok := b.cur.expectOneOfAndSkip('"', '\''); ok {
			valStart := b.cur.idx
			for !b.cur.isEOF() && b.cur.current1() != q {
				b.cur.advance()
			}
			value := BytesFromSlice(b.cur.slice(valStart, b.cur.idx))
			b.cur.expectAndSkip(q)
			into.Insert(name, value, true)
			continue
		}

		valStart := b.cur.idx
		b.scanIdentRun()
		into.Insert(name, BytesFromSlice(b.cur.slice(valStart, b.cur.idx)), true)
	}
}

// scanIdentRun advances the cursor over a run of admissible identifier bytes
// (§4.B), using searchNonIdent to locate the boundary in one pass rather
// than testing isIdent byte by byte.
func (b *treeBuilder) scanIdentRun() {
	rest := b.cur.buf[b.cur.idx:]
	if off, ok := searchNonIdent(rest); ok {
		b.cur.idx += off
	} else {
		b.cur.idx = len(b.cur.buf)
	}
}

// scanToGT advances to (not past) the next '>', or EOF if none remains, and
// returns the position reached. Used for bogus declarations and stray
// closing tags, where only the boundary matters.
func (b *treeBuilder) scanToGT() int {
	rest := b.cur.buf[b.cur.idx:]
	if off, ok := find(rest, '>'); ok {
		b.cur.idx += off
	} else {
		b.cur.idx = len(b.cur.buf)
	}
	return b.cur.idx
}

func (b *treeBuilder) consumeGT() {
	b.cur.expectAndSkip('>')
}

func (b *treeBuilder) advanceN(n int) {
	for i := 0; i < n && !b.cur.isEOF(); i++ {
		b.cur.advance()
	}
}

func asciiLowerString(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = asciiLower(c)
	}
	return string(out)
}
