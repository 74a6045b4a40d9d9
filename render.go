package tl

import "strings"

// renderNode renders a single node (tag, raw text, or comment) to HTML.
// Raw and Comment nodes render as their verbatim bytes (lossily decoded);
// Tag nodes are reconstructed from their current name/attributes/children,
// never from any cached raw span — see renderTag.
func renderNode(p *Parser, h Handle) string {
	node, ok := h.Get(p)
	if !ok {
		return ""
	}
	switch node.Kind() {
	case NodeTag:
		return renderTag(p, &node.tag)
	case NodeRaw:
		return node.text.AsUTF8StrLossy()
	case NodeComment:
		return node.text.AsUTF8StrLossy()
	default:
		return ""
	}
}

// renderTag reconstructs a tag's outer HTML from its current state. This is
// always a fresh reconstruction rather than a reuse of Tag.raw: the dirty
// bit set by markDirty only covers mutation performed through the
// AttributeMap/ChildList/Parser.Replace helpers, but a caller is also free
// to mutate a node in place via a bare Handle.GetMut pointer write (§5),
// which bypasses dirty tracking entirely. Reconstructing unconditionally is
// the only rendering strategy that is correct for both paths; Tag.raw
// remains available separately as the verbatim source span (see DESIGN.md).
func renderTag(p *Parser, tag *Tag) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.Write(tag.name.AsBytes())
	for _, pair := range tag.attributes.Pairs() {
		sb.WriteByte(' ')
		sb.Write(pair.Name)
		if pair.HasValue {
			sb.WriteByte('=')
			sb.WriteByte('"')
			sb.Write(pair.Value)
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('>')
	if !tag.void {
		for _, ch := range tag.children.top {
			sb.WriteString(renderNode(p, ch))
		}
		sb.WriteString("</")
		sb.Write(tag.name.AsBytes())
		sb.WriteByte('>')
	}
	return sb.String()
}

// OuterHTML renders t and its full subtree.
func (t *Tag) OuterHTML(p *Parser) string {
	return renderTag(p, t)
}

// InnerHTML renders t's direct children, without t's own opening/closing
// tag.
func (t *Tag) InnerHTML(p *Parser) string {
	var sb strings.Builder
	for _, ch := range t.children.top {
		sb.WriteString(renderNode(p, ch))
	}
	return sb.String()
}

// InnerText concatenates the UTF-8 (lossy) text of every Raw descendant of
// t, in document order, skipping Comment nodes and the tag boundaries
// themselves (§6).
func (t *Tag) InnerText(p *Parser) string {
	var sb strings.Builder
	for _, h := range t.children.All(p) {
		node, ok := h.Get(p)
		if !ok {
			continue
		}
		if raw, ok := node.AsRaw(); ok {
			sb.WriteString(raw.AsUTF8StrLossy())
		}
	}
	return sb.String()
}
