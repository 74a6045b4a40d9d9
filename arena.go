package tl

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"
)

// ErrOverlongInput is returned when an input would produce more nodes than
// fit in a 32-bit Handle (§7). In practice this requires billions of nodes;
// the guard exists so the contract is honored rather than silently
// truncating handles.
var ErrOverlongInput = errors.New("tl: input produces more nodes than a 32-bit handle can address")

// defaultArenaSlabBytes bounds each arena slab's footprint; the node count per
// slab is derived from it the same way the teacher's arena sizes its node
// slab from a byte budget (nodeCapacityForBytes in the original arena.go).
const defaultArenaSlabBytes = 256 * 1024

const minArenaSlabNodes = 64

func arenaSlabNodeCap() int {
	size := int(unsafe.Sizeof(Node{}))
	if size <= 0 {
		return minArenaSlabNodes
	}
	capacity := defaultArenaSlabBytes / size
	if capacity < minArenaSlabNodes {
		return minArenaSlabNodes
	}
	return capacity
}

// nodeArena is the flat, append-only node store backing Parser (component E).
// It is slab-allocated rather than backed by one ever-growing slice: once a
// slab is handed out, its backing array never moves, so a *Node obtained via
// get remains valid for the arena's lifetime (handles, not pointers, are
// still the only thing callers are meant to hold onto — see §3/§4.E). This
// mirrors odvcencio-gotreesitter/arena.go's slab-sizing and pooling idiom,
// adapted from pointer-tree nodes to a Handle-indexed arena: there is no
// incremental/full arena-class split here (§1 rules out incremental input),
// so there is a single pool rather than two.
type nodeArena struct {
	slabCap int
	slabs   [][]Node
	count   int

	refs atomic.Int32
}

var arenaPool = sync.Pool{
	New: func() any {
		return &nodeArena{slabCap: arenaSlabNodeCap()}
	},
}

// acquireNodeArena returns a fresh or pooled arena ready for a new parse.
func acquireNodeArena() *nodeArena {
	a := arenaPool.Get().(*nodeArena)
	a.refs.Store(1)
	return a
}

// retain increments the arena's reference count. Callers that hand out a
// shared *Parser (e.g. both a Document and a borrowed projection of it) must
// retain before storing a second reference and release when done with it.
func (a *nodeArena) retain() {
	if a == nil {
		return
	}
	a.refs.Add(1)
}

// release decrements the reference count, returning the arena to the pool
// once the last reference drops.
func (a *nodeArena) release() {
	if a == nil {
		return
	}
	if a.refs.Add(-1) != 0 {
		return
	}
	a.reset()
	arenaPool.Put(a)
}

func (a *nodeArena) reset() {
	for i := range a.slabs {
		slab := a.slabs[i]
		for j := range slab {
			slab[j] = Node{}
		}
	}
	a.count = 0
}

// push appends n to the arena and returns its handle.
func (a *nodeArena) push(n Node) (Handle, error) {
	if uint64(a.count) >= uint64(math.MaxUint32) {
		return 0, fmt.Errorf("tl: arena has %d nodes, cannot address a %d-th: %w", a.count, a.count+1, ErrOverlongInput)
	}
	slabIdx := a.count / a.slabCap
	offset := a.count % a.slabCap
	if slabIdx >= len(a.slabs) {
		a.slabs = append(a.slabs, make([]Node, a.slabCap))
	}
	a.slabs[slabIdx][offset] = n
	h := Handle(a.count)
	a.count++
	return h, nil
}

// get resolves a handle to a pointer into its slab. ok is false for an
// out-of-range handle.
func (a *nodeArena) get(h Handle) (*Node, bool) {
	idx := int(h)
	if idx < 0 || idx >= a.count {
		return nil, false
	}
	slabIdx := idx / a.slabCap
	offset := idx % a.slabCap
	return &a.slabs[slabIdx][offset], true
}

// len returns the number of nodes pushed so far.
func (a *nodeArena) len() int {
	return a.count
}

// each visits every node in insertion order, which is document pre-order
// (component E contract). Stops early if fn returns false.
func (a *nodeArena) each(fn func(Handle, *Node) bool) {
	for i := 0; i < a.count; i++ {
		h := Handle(i)
		n, _ := a.get(h)
		if !fn(h, n) {
			return
		}
	}
}
