package tl

import (
	"bytes"
	"errors"

	"github.com/tslnc04/tl/query"
)

// ErrSelectorUnparsable is returned by QuerySelector when the given selector
// string cannot be parsed (§7).
var ErrSelectorUnparsable = errors.New("tl: query selector could not be parsed")

// Matches is a restartable, cloneable iterator over the tag handles a parsed
// selector matches, in document order. Unlike a one-shot Rust iterator, a
// Matches can be rewound (clone keeps iterating from where the original
// left off, or resets its own cursor) since the candidate set is computed
// once, up front, rather than lazily walked (component H).
type Matches struct {
	candidates []Handle
	idx        int
}

// Next returns the next matching handle, or (0, false) once exhausted.
func (m *Matches) Next() (Handle, bool) {
	if m.idx >= len(m.candidates) {
		return 0, false
	}
	h := m.candidates[m.idx]
	m.idx++
	return h, true
}

// Clone returns an independent copy of m at its current position.
func (m *Matches) Clone() *Matches {
	cp := *m
	return &cp
}

// Count reports how many matches remain to be yielded by Next.
func (m *Matches) Count() int {
	if m.idx >= len(m.candidates) {
		return 0
	}
	return len(m.candidates) - m.idx
}

// Reset rewinds m to its first match.
func (m *Matches) Reset() {
	m.idx = 0
}

// QuerySelector parses s and returns an iterator over t's descendant tags
// that match it, scoped to t's subtree (§6).
func (t *Tag) QuerySelector(p *Parser, s string) (*Matches, error) {
	return querySelectorOver(p, t.children.top, s)
}

// querySelectorOver parses s and evaluates it against every tag reachable
// (in pre-order) from scope, a list of sibling handles to start the walk at.
func querySelectorOver(p *Parser, scope []Handle, s string) (*Matches, error) {
	expr, ok := query.Parse([]byte(s))
	if !ok {
		return nil, ErrSelectorUnparsable
	}

	var candidates []Handle
	var walk func(handles []Handle)
	walk = func(handles []Handle) {
		for _, h := range handles {
			node, ok := h.Get(p)
			if !ok {
				continue
			}
			tag, isTag := node.AsTag()
			if !isTag {
				continue
			}
			if evaluate(p, h, tag, expr) {
				candidates = append(candidates, h)
			}
			walk(tag.Children().Top())
		}
	}
	walk(scope)

	return &Matches{candidates: candidates}, nil
}

// evaluate reports whether the tag at h matches expr. Grounded on the
// Selector enum consumed by queryselector/parser.rs: leaf kinds test a
// single property of the tag; And/Or combine two evaluations of the same
// tag; Descendant/Parent additionally require an ancestor (any ancestor, or
// specifically the immediate parent) to match the left operand.
func evaluate(p *Parser, h Handle, tag *Tag, e *query.Expr) bool {
	switch e.Kind {
	case query.KindTag:
		// Byte-exact, unlike the case-insensitive element-kind lookups
		// (voidElements, rawTextElements): selectors are case-sensitive (§4.H).
		return bytes.Equal(tag.Name().AsBytes(), e.Name)
	case query.KindID:
		id, ok := tag.Attributes().ID()
		return ok && bytes.Equal(id.AsBytes(), e.Name)
	case query.KindClass:
		return tag.Attributes().HasClass(e.Name)
	case query.KindAll:
		return true
	case query.KindAttribute:
		_, _, present := tag.Attributes().Get(e.Name)
		return present
	case query.KindAttributeValue:
		value, hasValue, present := tag.Attributes().Get(e.Name)
		return present && hasValue && bytes.Equal(value.AsBytes(), e.Value)
	case query.KindAttributeValueWhitespacedContains:
		value, hasValue, present := tag.Attributes().Get(e.Name)
		if !present || !hasValue {
			return false
		}
		for _, tok := range bytes.Fields(value.AsBytes()) {
			if bytes.Equal(tok, e.Value) {
				return true
			}
		}
		return false
	case query.KindAttributeValueStartsWith:
		value, hasValue, present := tag.Attributes().Get(e.Name)
		return present && hasValue && bytes.HasPrefix(value.AsBytes(), e.Value)
	case query.KindAttributeValueEndsWith:
		value, hasValue, present := tag.Attributes().Get(e.Name)
		return present && hasValue && bytes.HasSuffix(value.AsBytes(), e.Value)
	case query.KindAttributeValueSubstring:
		value, hasValue, present := tag.Attributes().Get(e.Name)
		return present && hasValue && bytes.Contains(value.AsBytes(), e.Value)
	case query.KindAnd:
		return evaluate(p, h, tag, e.Left) && evaluate(p, h, tag, e.Right)
	case query.KindOr:
		return evaluate(p, h, tag, e.Left) || evaluate(p, h, tag, e.Right)
	case query.KindDescendant:
		return evaluate(p, h, tag, e.Right) && hasMatchingAncestor(p, h, e.Left)
	case query.KindParent:
		return evaluate(p, h, tag, e.Right) && parentMatches(p, h, e.Left)
	default:
		return false
	}
}

func hasMatchingAncestor(p *Parser, h Handle, e *query.Expr) bool {
	node, ok := h.Get(p)
	if !ok {
		return false
	}
	for {
		parent, hasParent := node.Parent()
		if !hasParent {
			return false
		}
		parentNode, ok := parent.Get(p)
		if !ok {
			return false
		}
		if tag, isTag := parentNode.AsTag(); isTag && evaluate(p, parent, tag, e) {
			return true
		}
		node = parentNode
	}
}

func parentMatches(p *Parser, h Handle, e *query.Expr) bool {
	node, ok := h.Get(p)
	if !ok {
		return false
	}
	parent, hasParent := node.Parent()
	if !hasParent {
		return false
	}
	parentNode, ok := parent.Get(p)
	if !ok {
		return false
	}
	tag, isTag := parentNode.AsTag()
	if !isTag {
		return false
	}
	return evaluate(p, parent, tag, e)
}
