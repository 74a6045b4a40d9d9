package tl

// Handle is an opaque index into a Parser's node arena. Handles are plain
// integers: freely copyable, stable for the arena's lifetime, and carry no
// meaning outside the Parser that produced them (§3, §4.E).
type Handle uint32

// Get resolves h to its node. ok is false if h is out of range for p.
func (h Handle) Get(p *Parser) (*Node, bool) {
	return p.arena.get(h)
}

// GetMut resolves h to its node for mutation. Structural replacement through
// the returned pointer (e.g. *node = tl.NewRawNode(...)) does not by itself
// invalidate ancestor caches — use Parser.Replace for that.
func (h Handle) GetMut(p *Parser) (*Node, bool) {
	return p.arena.get(h)
}
