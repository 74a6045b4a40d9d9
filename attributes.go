package tl

import "bytes"

// attrPair is one ordered (name, optional value) entry in an AttributeMap. A
// zero hasValue means the attribute is valueless (e.g. allowfullscreen).
type attrPair struct {
	name     Bytes
	value    Bytes
	hasValue bool
}

// AttributeMap is an ordered name -> optional-value mapping, preserving
// insertion order the way source attributes are written. It keeps a parallel
// keys-then-lookup shape (ordered slice for iteration, index for point
// lookups) in the spirit of the OrderedMap idiom in
// arturoeanton-go-xml/xml/map.go, specialized here for the two attributes
// every HTML consumer asks for by direct name: id and class.
//
// An AttributeMap is always owned by exactly one Tag. owner/self are set once
// when the Tag is created so that mutating methods can propagate cache
// invalidation (§5) up the tree; both are nil/zero for a map built outside of
// a parse (e.g. in tests), in which case mutation simply skips invalidation.
type AttributeMap struct {
	pairs []attrPair
	idIdx int // index into pairs holding the "id" attribute, or -1 (0 in a zero-value map; ID checks the name)

	owner *Parser
	self  Handle
}

// NewAttributeMap returns an empty, unbound attribute map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{idIdx: -1}
}

func (m *AttributeMap) bind(owner *Parser, self Handle) {
	m.owner = owner
	m.self = self
}

func (m *AttributeMap) touch() {
	if m.owner != nil {
		m.owner.markDirty(m.self)
	}
}

func (m *AttributeMap) indexOf(name []byte) int {
	for i := range m.pairs {
		if b, ok := m.pairs[i].name.AsBytesBorrowed(); ok {
			if bytes.Equal(b, name) {
				return i
			}
		} else if bytes.Equal(m.pairs[i].name.AsBytes(), name) {
			return i
		}
	}
	return -1
}

// Insert appends name=value, or replaces it in place if already present. A
// value with hasValue == false records a valueless attribute.
func (m *AttributeMap) Insert(name []byte, value Bytes, hasValue bool) {
	if i := m.indexOf(name); i >= 0 {
		m.pairs[i].value = value
		m.pairs[i].hasValue = hasValue
		m.touch()
		return
	}
	m.pairs = append(m.pairs, attrPair{name: BytesFromSlice(append([]byte(nil), name...)), value: value, hasValue: hasValue})
	if isIDName(name) {
		m.idIdx = len(m.pairs) - 1
	}
	m.touch()
}

// Get returns the attribute's value. present is false if the attribute is
// absent; hasValue is false if the attribute is present but valueless.
func (m *AttributeMap) Get(name []byte) (value Bytes, hasValue bool, present bool) {
	i := m.indexOf(name)
	if i < 0 {
		return Bytes{}, false, false
	}
	return m.pairs[i].value, m.pairs[i].hasValue, true
}

// GetMut returns a pointer to the attribute's value for in-place mutation
// (e.g. calling Bytes.Set on it). ok is false if the attribute is absent or
// valueless. Obtaining a mutable reference pessimistically marks the owning
// tag dirty, since the caller is assumed to be about to mutate it (§5).
func (m *AttributeMap) GetMut(name []byte) (value *Bytes, ok bool) {
	i := m.indexOf(name)
	if i < 0 || !m.pairs[i].hasValue {
		return nil, false
	}
	m.touch()
	return &m.pairs[i].value, true
}

// Remove deletes the entry entirely. It reports whether the attribute was
// present.
func (m *AttributeMap) Remove(name []byte) bool {
	i := m.indexOf(name)
	if i < 0 {
		return false
	}
	m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
	if isIDName(name) {
		m.idIdx = -1
	} else if m.idIdx > i {
		m.idIdx--
	}
	m.touch()
	return true
}

// RemoveValue keeps the attribute entry but clears its value, so it renders
// as a bare attribute name. It reports whether the attribute was present.
func (m *AttributeMap) RemoveValue(name []byte) bool {
	i := m.indexOf(name)
	if i < 0 {
		return false
	}
	m.pairs[i].value = Bytes{}
	m.pairs[i].hasValue = false
	m.touch()
	return true
}

// ID returns the memoized id attribute's value, if present and non-valueless.
func (m *AttributeMap) ID() (Bytes, bool) {
	if m.idIdx < 0 || m.idIdx >= len(m.pairs) {
		return Bytes{}, false
	}
	p := m.pairs[m.idIdx]
	if !p.hasValue || !isIDName(p.name.AsBytes()) {
		return Bytes{}, false
	}
	return p.value, true
}

// ClassTokens returns the whitespace-separated tokens of the class attribute
// value. The token list is recomputed from the attribute's current bytes on
// each call rather than cached, trading a cheap re-scan for not having to
// wire a second invalidation path alongside the id shortcut.
func (m *AttributeMap) ClassTokens() [][]byte {
	value, hasValue, present := m.Get([]byte("class"))
	if !present || !hasValue {
		return nil
	}
	return bytes.Fields(value.AsBytes())
}

// HasClass reports whether the class attribute contains name as a token.
func (m *AttributeMap) HasClass(name []byte) bool {
	for _, tok := range m.ClassTokens() {
		if bytes.Equal(tok, name) {
			return true
		}
	}
	return false
}

// Len returns the number of attributes.
func (m *AttributeMap) Len() int {
	return len(m.pairs)
}

// Pair is a read-only view of one (name, optional value) attribute, in
// document order.
type Pair struct {
	Name     []byte
	Value    []byte
	HasValue bool
}

// Pairs returns all attributes in insertion order.
func (m *AttributeMap) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = Pair{Name: p.name.AsBytes(), Value: p.value.AsBytes(), HasValue: p.hasValue}
	}
	return out
}

func isIDName(name []byte) bool {
	return bytes.Equal(name, []byte("id"))
}
