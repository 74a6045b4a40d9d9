package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesBorrowedVsOwned(t *testing.T) {
	src := []byte("hello")
	b := BytesFromSlice(src)
	require.False(t, b.IsOwned())
	view, ok := b.AsBytesBorrowed()
	require.True(t, ok)
	require.Equal(t, src, view)

	owned := NewOwnedBytes(src)
	require.True(t, owned.IsOwned())
	_, ok = owned.AsBytesBorrowed()
	require.False(t, ok)
	require.Equal(t, src, owned.AsBytes())

	// mutating the source after owning shouldn't affect the copy
	src[0] = 'H'
	require.Equal(t, byte('h'), owned.AsBytes()[0])
}

func TestBytesSetTransitionsToOwned(t *testing.T) {
	b := BytesFromSlice([]byte("abc"))
	require.NoError(t, b.Set("xyz"))
	require.True(t, b.IsOwned())
	require.Equal(t, "xyz", b.String())

	require.NoError(t, b.Set([]byte("123")))
	require.Equal(t, "123", b.String())

	err := b.Set(42)
	require.Error(t, err)
}

func TestBytesTryAsUTF8Str(t *testing.T) {
	valid := BytesFromSlice([]byte("caf\xc3\xa9"))
	s, err := valid.TryAsUTF8Str()
	require.NoError(t, err)
	require.Equal(t, "café", s)

	invalid := BytesFromSlice([]byte{0xff, 0xfe})
	_, err = invalid.TryAsUTF8Str()
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestBytesAsUTF8StrLossyElidesInvalid(t *testing.T) {
	b := BytesFromSlice([]byte{'o', 'k', 0xff, 'd', 'o', 'n', 'e'})
	require.Equal(t, "okdone", b.AsUTF8StrLossy())
}

func TestBytesCloneIndependence(t *testing.T) {
	owned := NewOwnedBytes([]byte("abc"))
	clone := owned.Clone()
	require.NoError(t, clone.Set("zzz"))
	require.Equal(t, "abc", owned.String())
	require.Equal(t, "zzz", clone.String())

	borrowed := BytesFromSlice([]byte("shared"))
	borrowedClone := borrowed.Clone()
	require.True(t, borrowed.Equal(borrowedClone))
}

func TestBytesEqualAndLen(t *testing.T) {
	a := BytesFromString("same")
	b := NewOwnedBytes([]byte("same"))
	require.True(t, a.Equal(b))
	require.Equal(t, 4, a.Len())
}
