package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaPushAndGet(t *testing.T) {
	a := acquireNodeArena()
	defer a.release()

	h1, err := a.push(NewRawNode(BytesFromString("one")))
	require.NoError(t, err)
	h2, err := a.push(NewRawNode(BytesFromString("two")))
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	n, ok := a.get(h1)
	require.True(t, ok)
	raw, ok := n.AsRaw()
	require.True(t, ok)
	require.Equal(t, "one", raw.AsUTF8StrLossy())

	require.Equal(t, 2, a.len())
}

func TestArenaGetOutOfRange(t *testing.T) {
	a := acquireNodeArena()
	defer a.release()

	_, ok := a.get(Handle(999))
	require.False(t, ok)
}

func TestArenaEachStopsEarly(t *testing.T) {
	a := acquireNodeArena()
	defer a.release()

	for i := 0; i < 5; i++ {
		_, err := a.push(NewRawNode(BytesFromString("x")))
		require.NoError(t, err)
	}

	visited := 0
	a.each(func(h Handle, n *Node) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

func TestArenaSpansMultipleSlabs(t *testing.T) {
	a := acquireNodeArena()
	defer a.release()

	count := a.slabCap*2 + 5
	handles := make([]Handle, 0, count)
	for i := 0; i < count; i++ {
		h, err := a.push(NewRawNode(BytesFromString("x")))
		require.NoError(t, err)
		handles = append(handles, h)
	}
	require.Equal(t, count, a.len())
	for _, h := range handles {
		_, ok := a.get(h)
		require.True(t, ok)
	}
}

func TestArenaRetainRelease(t *testing.T) {
	a := acquireNodeArena()
	a.retain()
	a.release()
	require.Equal(t, int32(1), a.refs.Load())
	a.release()
}
