package tl

// NodeKind discriminates the three node shapes the tree builder produces.
// Node is a tagged sum in the Go idiom shown by dpotapov-go-pages/chtml/node.go
// (a single struct carrying a type discriminant plus the union of possible
// fields) rather than an interface-based hierarchy: discriminant inspection,
// not polymorphism (§4.E design note).
type NodeKind uint8

const (
	NodeTag NodeKind = iota
	NodeRaw
	NodeComment
)

func (k NodeKind) String() string {
	switch k {
	case NodeTag:
		return "Tag"
	case NodeRaw:
		return "Raw"
	case NodeComment:
		return "Comment"
	default:
		return "unknown"
	}
}

// Node is one entry in the arena: a tag, a run of raw text between tags, or a
// comment (delimiters included). Exactly one of tag/text is meaningful,
// selected by kind.
type Node struct {
	kind NodeKind
	tag  Tag
	text Bytes

	parent    Handle
	hasParent bool
}

// NewRawNode returns a Raw text node wrapping b.
func NewRawNode(b Bytes) Node {
	return Node{kind: NodeRaw, text: b}
}

// NewCommentNode returns a Comment node whose bytes include the `<!--`/`-->`
// delimiters.
func NewCommentNode(b Bytes) Node {
	return Node{kind: NodeComment, text: b}
}

// Kind reports which variant n holds.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// AsTag returns n's Tag view, if n is a Tag node.
func (n *Node) AsTag() (*Tag, bool) {
	if n.kind != NodeTag {
		return nil, false
	}
	return &n.tag, true
}

// AsRaw returns n's Raw bytes, if n is a Raw node.
func (n *Node) AsRaw() (*Bytes, bool) {
	if n.kind != NodeRaw {
		return nil, false
	}
	return &n.text, true
}

// AsComment returns n's Comment bytes, if n is a Comment node.
func (n *Node) AsComment() (*Bytes, bool) {
	if n.kind != NodeComment {
		return nil, false
	}
	return &n.text, true
}

// Parent returns the handle of n's parent tag, if any (false for nodes
// sitting at the document root).
func (n *Node) Parent() (Handle, bool) {
	return n.parent, n.hasParent
}

// Tag is a parsed element: a name, its attributes, its children, and the
// verbatim source span it was read from.
type Tag struct {
	name        Bytes
	selfClosing bool
	void        bool

	attributes AttributeMap
	children   ChildList

	raw      Bytes
	rawStart int
	rawEnd   int
}

// Name returns the tag name exactly as written in the source (original case
// preserved; classification elsewhere lower-cases only for comparison).
func (t *Tag) Name() Bytes {
	return t.name
}

// Attributes returns a read-only view of the tag's attributes.
func (t *Tag) Attributes() *AttributeMap {
	return &t.attributes
}

// AttributesMut returns the tag's attributes for mutation.
func (t *Tag) AttributesMut() *AttributeMap {
	return &t.attributes
}

// Children returns a read-only view of the tag's children.
func (t *Tag) Children() *ChildList {
	return &t.children
}

// ChildrenMut returns the tag's children for mutation.
func (t *Tag) ChildrenMut() *ChildList {
	return &t.children
}

// Raw returns the exact source bytes this tag was parsed from: from `<`
// through the closing `>` (or end of input if truncated). It is not
// recomputed after mutation — use OuterHTML, which always reconstructs the
// markup from the tag's current state (§3, §5).
func (t *Tag) Raw() Bytes {
	return t.raw
}

// SelfClosing reports whether the tag was written with a `/>` self-closing
// form.
func (t *Tag) SelfClosing() bool {
	return t.selfClosing
}

// Void reports whether the tag name is one of the void elements (§4.F),
// which never have children regardless of how they were written.
func (t *Tag) Void() bool {
	return t.void
}

// Boundaries returns this tag's span within the parser's input: the byte
// offset of its opening `<` and the byte offset of its closing `>` (one less
// than the exclusive end Raw() itself covers). For
// `"<div><p>haha</p></div>"`, the `<p>` tag reports (5, 15) (§8).
func (t *Tag) Boundaries(*Parser) (int, int) {
	end := t.rawEnd
	if end > t.rawStart {
		end--
	}
	return t.rawStart, end
}

// ChildList holds a tag's direct children (document order) plus a lazily
// computed, cached flattening of every descendant in document order. The
// cache is invalidated (cleared) on any structural mutation reachable from
// this tag; see Parser.markDirty.
type ChildList struct {
	top []Handle
	all []Handle // nil until computed, or after invalidation

	owner *Parser
	self  Handle
}

func (c *ChildList) bind(owner *Parser, self Handle) {
	c.owner = owner
	c.self = self
}

// Top returns the direct children, in document order.
func (c *ChildList) Top() []Handle {
	return c.top
}

// TopMut returns the direct children slice for in-place mutation (e.g.
// replacing an element's handle). Mutating through the returned slice does
// not itself invalidate caches; call Parser's mutation helpers (or
// ChildList.Push/ReplaceTop) for that.
func (c *ChildList) TopMut() []Handle {
	return c.top
}

// Push appends a new direct child handle and invalidates cached state.
func (c *ChildList) Push(h Handle) {
	c.top = append(c.top, h)
	c.invalidate()
}

// ReplaceTop overwrites the direct child at index i and invalidates cached
// state.
func (c *ChildList) ReplaceTop(i int, h Handle) {
	c.top[i] = h
	c.invalidate()
}

func (c *ChildList) invalidate() {
	c.all = nil
	if c.owner != nil {
		c.owner.markDirty(c.self)
	}
}

// All returns every descendant handle in document (pre-order) order,
// computing and caching it on first use.
func (c *ChildList) All(p *Parser) []Handle {
	if c.all != nil {
		return c.all
	}
	var out []Handle
	var walk func(handles []Handle)
	walk = func(handles []Handle) {
		for _, h := range handles {
			out = append(out, h)
			node, ok := h.Get(p)
			if !ok {
				continue
			}
			if tag, ok := node.AsTag(); ok {
				walk(tag.children.top)
			}
		}
	}
	walk(c.top)
	c.all = out
	return c.all
}
