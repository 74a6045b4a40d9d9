package tl

// ParserOptions configures optional auxiliary indexing performed while
// parsing (§6). The zero value is the default: neither index is populated.
type ParserOptions struct {
	// TrackIDs populates the id -> handle map during parsing, giving
	// GetElementByID O(1) lookups instead of a linear scan.
	TrackIDs bool
	// TrackClasses populates the class token -> handles map during parsing.
	TrackClasses bool
}

// Parser is the context through which Handles are resolved to Nodes (§6:
// "accessor yielding a context through which handles may be resolved to
// nodes"). It owns the node arena and the optional id/class side indices.
// Despite the name, it is not "the parsing process" — Document.Parser /
// ParserMut hand out access to this same context after parsing has finished,
// exactly as the Rust original's Parser type doubles as both.
type Parser struct {
	arena   *nodeArena
	options ParserOptions

	ids     map[string]Handle
	classes map[string][]Handle

	// dirty marks nodes (by handle) whose cached raw span / descendant list
	// must not be trusted and should be reconstructed on render (§5). Index
	// i corresponds to Handle(i).
	dirty []bool

	version    HTMLVersion
	hasVersion bool
}

// Version returns the HTML version declared by the document's DOCTYPE. ok is
// false if no DOCTYPE was present; a DOCTYPE of unrecognized form reports
// VersionUnknown with ok true.
func (p *Parser) Version() (HTMLVersion, bool) {
	return p.version, p.hasVersion
}

// Close releases the node arena backing p, returning its slabs to the pool
// acquireNodeArena draws from. Handles and *Node values obtained through p
// must not be used after Close, and p must not be used again either. Close
// is idempotent: a second call is a no-op since it finds no arena to
// release.
func (p *Parser) Close() {
	if p.arena == nil {
		return
	}
	p.arena.release()
	p.arena = nil
}

func newParser(options ParserOptions) *Parser {
	p := &Parser{
		arena:   acquireNodeArena(),
		options: options,
	}
	if options.TrackIDs {
		p.ids = make(map[string]Handle)
	}
	if options.TrackClasses {
		p.classes = make(map[string][]Handle)
	}
	return p
}

// Nodes returns every node in the arena, in document pre-order.
func (p *Parser) Nodes() []Node {
	out := make([]Node, p.arena.len())
	p.arena.each(func(h Handle, n *Node) bool {
		out[h] = *n
		return true
	})
	return out
}

// NodesLen returns the number of nodes in the arena without copying them.
func (p *Parser) NodesLen() int {
	return p.arena.len()
}

// NodeAt returns a pointer to the node at handle h, suitable for in-place
// mutation. This is the same resolution Handle.Get/GetMut perform.
func (p *Parser) NodeAt(h Handle) (*Node, bool) {
	return p.arena.get(h)
}

func (p *Parser) pushTag(t Tag) (Handle, error) {
	h, err := p.arena.push(Node{kind: NodeTag, tag: t})
	if err != nil {
		return 0, err
	}
	node, _ := p.arena.get(h)
	node.tag.attributes.bind(p, h)
	node.tag.children.bind(p, h)
	p.growDirty()
	return h, nil
}

func (p *Parser) pushRaw(b Bytes) (Handle, error) {
	return p.arena.push(NewRawNode(b))
}

func (p *Parser) pushComment(b Bytes) (Handle, error) {
	return p.arena.push(NewCommentNode(b))
}

func (p *Parser) setParent(child, parent Handle) {
	node, ok := p.arena.get(child)
	if !ok {
		return
	}
	node.parent = parent
	node.hasParent = true
}

func (p *Parser) growDirty() {
	for len(p.dirty) < p.arena.len() {
		p.dirty = append(p.dirty, false)
	}
}

// markDirty flags h and every ancestor of h as dirty, and clears each
// ancestor tag's cached descendant list, per the invalidation rules in §5.
func (p *Parser) markDirty(h Handle) {
	p.growDirty()
	cur, ok := h.Get(p)
	if !ok {
		return
	}
	if int(h) < len(p.dirty) {
		p.dirty[h] = true
	}
	for {
		parent, hasParent := cur.Parent()
		if !hasParent {
			return
		}
		if int(parent) < len(p.dirty) {
			p.dirty[parent] = true
		}
		parentNode, ok := parent.Get(p)
		if !ok {
			return
		}
		if tag, ok := parentNode.AsTag(); ok {
			tag.children.all = nil
		}
		cur = parentNode
	}
}

// isDirty reports whether h's cached raw span / descendant list must not be
// trusted.
func (p *Parser) isDirty(h Handle) bool {
	if int(h) >= len(p.dirty) {
		return false
	}
	return p.dirty[h]
}

// Replace overwrites the node at h wholesale (the Go equivalent of
// dereferencing a *mut Node and assigning a new variant in the original),
// and marks h and its ancestors dirty, clearing the ancestors' cached
// descendant lists.
func (p *Parser) Replace(h Handle, n Node) bool {
	node, ok := p.arena.get(h)
	if !ok {
		return false
	}
	parent, hasParent := node.parent, node.hasParent
	n.parent, n.hasParent = parent, hasParent
	*node = n
	if n.kind == NodeTag {
		node.tag.attributes.bind(p, h)
		node.tag.children.bind(p, h)
	}
	p.markDirty(h)
	return true
}

// GetElementByID returns the handle of the tag whose id attribute equals
// name. If the parser was configured with TrackIDs, this is an O(1) map
// lookup; otherwise it falls back to a linear scan (§3).
func (p *Parser) GetElementByID(name string) (Handle, bool) {
	if p.ids != nil {
		h, ok := p.ids[name]
		return h, ok
	}
	var found Handle
	var ok bool
	p.arena.each(func(h Handle, n *Node) bool {
		tag, isTag := n.AsTag()
		if !isTag {
			return true
		}
		id, hasID := tag.Attributes().ID()
		if hasID && id.AsUTF8StrLossy() == name {
			found, ok = h, true
			return false
		}
		return true
	})
	return found, ok
}

// GetElementsByClassName returns every tag handle whose class attribute
// contains name as a token, in document order.
func (p *Parser) GetElementsByClassName(name string) []Handle {
	if p.classes != nil {
		return append([]Handle(nil), p.classes[name]...)
	}
	var out []Handle
	nameBytes := []byte(name)
	p.arena.each(func(h Handle, n *Node) bool {
		tag, isTag := n.AsTag()
		if isTag && tag.Attributes().HasClass(nameBytes) {
			out = append(out, h)
		}
		return true
	})
	return out
}

func (p *Parser) indexTag(h Handle, t *Tag) {
	if p.ids != nil {
		if id, ok := t.Attributes().ID(); ok {
			p.ids[id.AsUTF8StrLossy()] = h
		}
	}
	if p.classes != nil {
		for _, tok := range t.Attributes().ClassTokens() {
			key := string(tok)
			p.classes[key] = append(p.classes[key], h)
		}
	}
}
