package tl

import "strings"

// Document is a parsed tree: a list of root-level node handles plus the
// Parser context they resolve through. It is the façade described in §6;
// parsing is total, so Parse always returns a usable Document (never an
// error).
type Document struct {
	parser *Parser
	roots  []Handle
}

// Parse tokenizes and tree-builds input, returning the resulting document.
// input is borrowed: the returned Document's Raw/Comment/attribute-value
// Bytes may alias it directly, so it must outlive the Document. Use
// ParseOwned if the caller does not already hold input for long enough.
func Parse(input []byte, opts ParserOptions) *Document {
	p := newParser(opts)
	roots := buildTree(input, p)
	return &Document{parser: p, roots: roots}
}

// Children returns the document's root-level node handles, in source order.
func (d *Document) Children() []Handle {
	return d.roots
}

// ChildrenMut returns the root-level handles for in-place mutation (e.g.
// replacing a root handle with ChildrenMut()[i] = newHandle).
func (d *Document) ChildrenMut() []Handle {
	return d.roots
}

// Parser returns the document's node-resolution context.
func (d *Document) Parser() *Parser {
	return d.parser
}

// ParserMut returns the document's node-resolution context for mutation.
// It is the same value Parser returns; the distinct name exists to mirror
// the read/write accessor pairing used throughout the surface (§6).
func (d *Document) ParserMut() *Parser {
	return d.parser
}

// Nodes returns every node the arena holds, in document pre-order.
func (d *Document) Nodes() []Node {
	return d.parser.Nodes()
}

// NodesMut returns every node the arena holds as mutable pointers, in
// document pre-order.
func (d *Document) NodesMut() []*Node {
	n := d.parser.NodesLen()
	out := make([]*Node, n)
	for i := 0; i < n; i++ {
		out[i], _ = d.parser.NodeAt(Handle(i))
	}
	return out
}

// GetElementByID returns the handle of the tag whose id attribute equals
// name.
func (d *Document) GetElementByID(name string) (Handle, bool) {
	return d.parser.GetElementByID(name)
}

// GetElementsByClassName returns every tag handle whose class attribute
// contains name as a token, in document order.
func (d *Document) GetElementsByClassName(name string) []Handle {
	return d.parser.GetElementsByClassName(name)
}

// QuerySelector parses s and returns an iterator over the document's
// descendant tags that match it.
func (d *Document) QuerySelector(s string) (*Matches, error) {
	return querySelectorOver(d.parser, d.roots, s)
}

// OuterHTML renders the whole document.
func (d *Document) OuterHTML() string {
	var sb strings.Builder
	for _, h := range d.roots {
		sb.WriteString(renderNode(d.parser, h))
	}
	return sb.String()
}

// Version returns the HTML version declared by the document's DOCTYPE. ok is
// false if no DOCTYPE was present; a DOCTYPE of unrecognized form reports
// VersionUnknown with ok true.
func (d *Document) Version() (HTMLVersion, bool) {
	return d.parser.Version()
}

// Close releases d's node arena back to the pool newParser draws from (§6,
// "arena pooling across documents"). d and every Handle it produced must not
// be used after Close.
func (d *Document) Close() {
	d.parser.Close()
}

// OwnedDocument pairs an owned input buffer with a Document borrowing from
// it. In the original this required pinning the buffer in place, since
// Rust's borrow checker must statically verify the borrowed view cannot
// outlive its backing storage through a move. Go's garbage collector makes
// that unnecessary: the buffer and the Document's borrowed slices are just
// two fields of the same heap-allocated struct, and the GC keeps the buffer
// alive for as long as anything (including those slices) references it,
// across any number of moves/copies of the OwnedDocument value itself (§5,
// §9 "Self-referential ownership").
type OwnedDocument struct {
	buf []byte
	doc *Document
}

// ParseOwned copies input, parses the copy, and returns both bundled
// together so the result does not borrow from the caller's slice.
func ParseOwned(input []byte, opts ParserOptions) *OwnedDocument {
	buf := make([]byte, len(input))
	copy(buf, input)
	return &OwnedDocument{buf: buf, doc: Parse(buf, opts)}
}

// GetRef returns the borrowed Document view.
func (o *OwnedDocument) GetRef() *Document {
	return o.doc
}

// Close releases o's underlying Document (and its node arena). o must not be
// used after Close.
func (o *OwnedDocument) Close() {
	o.doc.Close()
}
