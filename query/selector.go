// Package query implements the CSS-like selector grammar accepted by
// QuerySelector (§4.G). It is deliberately self-contained: Expr is a plain
// data tree with no dependency on the document/arena package, so that the
// matcher living there can import this package without creating a cycle.
package query

// Kind discriminates the node shapes of a parsed selector expression.
type Kind uint8

const (
	KindTag Kind = iota
	KindID
	KindClass
	KindAll
	KindAttribute
	KindAttributeValue
	KindAttributeValueWhitespacedContains
	KindAttributeValueStartsWith
	KindAttributeValueEndsWith
	KindAttributeValueSubstring
	KindAnd
	KindOr
	KindDescendant
	KindParent
)

// Expr is one node of a parsed selector. Leaf kinds (Tag, ID, Class, All,
// Attribute*) carry Name/Value; the four combinator kinds (And, Or,
// Descendant, Parent) carry Left/Right.
type Expr struct {
	Kind  Kind
	Name  []byte
	Value []byte
	Left  *Expr
	Right *Expr
}

// Parse parses a selector string into an expression tree, grounded on
// queryselector/parser.rs's recursive-descent grammar (selector list of
// complex selectors combined by `,`, `>`, descendant-whitespace, and
// compound-AND-by-adjacency). ok is false for an empty or unparsable input.
func Parse(input []byte) (*Expr, bool) {
	p := &parser{buf: input}
	left, ok := p.parseComplexSelector(false)
	if !ok {
		return nil, false
	}
	for {
		right, ok := p.parseComplexSelector(false)
		if !ok {
			break
		}
		left = &Expr{Kind: KindOr, Left: left, Right: right}
	}
	return left, true
}

type parser struct {
	buf []byte
	idx int
}

func (p *parser) isEOF() bool { return p.idx >= len(p.buf) }

func (p *parser) current() (byte, bool) {
	if p.isEOF() {
		return 0, false
	}
	return p.buf[p.idx], true
}

func (p *parser) advance() {
	if !p.isEOF() {
		p.idx++
	}
}

func (p *parser) expectAndSkip(want byte) bool {
	b, ok := p.current()
	if !ok || b != want {
		return false
	}
	p.advance()
	return true
}

func (p *parser) expectOneOfAndSkip(set ...byte) (byte, bool) {
	b, ok := p.current()
	if !ok {
		return 0, false
	}
	for _, w := range set {
		if b == w {
			p.advance()
			return b, true
		}
	}
	return 0, false
}

func (p *parser) skipWhitespaces() bool {
	skipped := false
	for {
		b, ok := p.current()
		if !ok || b != ' ' {
			break
		}
		p.advance()
		skipped = true
	}
	return skipped
}

func isIdent(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '-' || b == '_' || b == ':' || b == '+' || b == '/':
		return true
	default:
		return false
	}
}

func (p *parser) readIdentifier() []byte {
	start := p.idx
	for !p.isEOF() {
		b, _ := p.current()
		if !isIdent(b) {
			break
		}
		p.advance()
	}
	return p.buf[start:p.idx]
}

// parseComplexSelector parses a series of compound selectors joined by
// combinators (`>`, whitespace-as-descendant, adjacency-as-AND). nested is
// true when parsing the right-hand operand of a combinator, in which case
// parsing stops after a single compound selector (the outer call resumes the
// combinator loop).
func (p *parser) parseComplexSelector(nested bool) (*Expr, bool) {
	left, ok := p.parseCompoundSelector()
	if !ok {
		return nil, false
	}
	if nested {
		return left, true
	}
	hasWhitespace := p.skipWhitespaces()

	for {
		tok, ok := p.current()
		if !ok {
			break
		}
		switch {
		case tok == ',':
			p.advance()
			return left, true
		case tok == '>':
			p.advance()
			right, ok := p.parseComplexSelector(true)
			if !ok {
				return nil, false
			}
			left = &Expr{Kind: KindParent, Left: left, Right: right}
		case hasWhitespace:
			right, ok := p.parseComplexSelector(true)
			if !ok {
				return nil, false
			}
			left = &Expr{Kind: KindDescendant, Left: left, Right: right}
		default:
			right, ok := p.parseComplexSelector(true)
			if !ok {
				return nil, false
			}
			left = &Expr{Kind: KindAnd, Left: left, Right: right}
		}
		hasWhitespace = p.skipWhitespaces()
	}

	return left, true
}

// parseCompoundSelector parses a run of simple selectors with no separator
// (e.g. "div.hello.world#id"), folding them together with And.
func (p *parser) parseCompoundSelector() (*Expr, bool) {
	var result *Expr
	p.skipWhitespaces()

	for {
		right, ok := p.parseSimpleSelector()
		if !ok {
			break
		}
		if result == nil {
			result = right
		} else {
			result = &Expr{Kind: KindAnd, Left: result, Right: right}
		}
	}

	if result == nil {
		return nil, false
	}
	return result, true
}

func (p *parser) parseSimpleSelector() (*Expr, bool) {
	tok, ok := p.current()
	if !ok {
		return nil, false
	}
	switch {
	case tok == '#':
		p.advance()
		return &Expr{Kind: KindID, Name: p.readIdentifier()}, true
	case tok == '.':
		p.advance()
		return &Expr{Kind: KindClass, Name: p.readIdentifier()}, true
	case tok == '*':
		p.advance()
		return &Expr{Kind: KindAll}, true
	case tok == '[':
		p.advance()
		return p.parseAttribute()
	case isIdent(tok):
		return &Expr{Kind: KindTag, Name: p.readIdentifier()}, true
	default:
		return nil, false
	}
}

func (p *parser) parseAttribute() (*Expr, bool) {
	attribute := p.readIdentifier()
	tok, ok := p.current()
	if !ok {
		return nil, false
	}

	switch {
	case tok == ']':
		p.advance()
		return &Expr{Kind: KindAttribute, Name: attribute}, true
	case tok == '=':
		p.advance()
		value, ok := p.readQuotedOrBareValue()
		if !ok {
			return nil, false
		}
		return &Expr{Kind: KindAttributeValue, Name: attribute, Value: value}, true
	case tok == '~' || tok == '^' || tok == '$' || tok == '*':
		p.advance()
		if !p.expectAndSkip('=') {
			return nil, false
		}
		value, ok := p.readQuotedOrBareValue()
		if !ok {
			return nil, false
		}
		kind := map[byte]Kind{
			'~': KindAttributeValueWhitespacedContains,
			'^': KindAttributeValueStartsWith,
			'$': KindAttributeValueEndsWith,
			'*': KindAttributeValueSubstring,
		}[tok]
		return &Expr{Kind: kind, Name: attribute, Value: value}, true
	default:
		return nil, false
	}
}

// readQuotedOrBareValue reads an attribute-value operand and the closing
// `]`. A quote character is only required to balance if the value itself
// began with one.
func (p *parser) readQuotedOrBareValue() ([]byte, bool) {
	quote, hasQuote := p.expectOneOfAndSkip('"', '\'')
	value := p.readIdentifier()
	if hasQuote {
		if !p.expectAndSkip(quote) {
			return nil, false
		}
	}
	if !p.expectAndSkip(']') {
		return nil, false
	}
	return value, true
}
