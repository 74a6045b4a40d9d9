package tl

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by UTF-8-requiring accessors when the
// underlying bytes are not valid UTF-8. Parsing itself never returns this;
// it is only raised on demand by accessors such as Bytes.TryAsUTF8Str.
var ErrInvalidEncoding = errors.New("tl: invalid utf-8 encoding")

// Bytes is a small tagged container holding either a slice borrowed from the
// document's input buffer, or an independently owned byte slice. Equality is
// always by content; mutating a Bytes (Set) transitions it to
// owned, regardless of its previous variant.
type Bytes struct {
	data   []byte
	owned  bool
	copied []byte // backing storage for the owned variant
}

// BytesFromSlice returns a Bytes borrowing b. The returned value shares b's
// backing array; it is the caller's responsibility to ensure b outlives it.
func BytesFromSlice(b []byte) Bytes {
	return Bytes{data: b}
}

// BytesFromString returns a borrowed-variant Bytes over a fresh []byte copy
// of s.
func BytesFromString(s string) Bytes {
	return Bytes{data: []byte(s)}
}

// NewOwnedBytes returns an owned Bytes holding a copy of b.
func NewOwnedBytes(b []byte) Bytes {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Bytes{data: cp, owned: true, copied: cp}
}

// AsBytes returns the byte view, regardless of variant.
func (b Bytes) AsBytes() []byte {
	return b.data
}

// AsBytesBorrowed returns the borrowed slice if b is the borrowed variant, or
// (nil, false) if b owns its storage.
func (b Bytes) AsBytesBorrowed() ([]byte, bool) {
	if b.owned {
		return nil, false
	}
	return b.data, true
}

// IsOwned reports whether b holds an independently owned allocation.
func (b Bytes) IsOwned() bool {
	return b.owned
}

// Set replaces the contents of b with an owned copy of v, releasing any prior
// owned buffer. v may be a []byte, a string, or a Bytes; any other type is
// rejected with an error and b is left unchanged.
func (b *Bytes) Set(v any) error {
	var src []byte
	switch x := v.(type) {
	case []byte:
		src = x
	case string:
		src = []byte(x)
	case Bytes:
		src = x.AsBytes()
	default:
		return errors.New("tl: Bytes.Set: unsupported source type")
	}
	cp := make([]byte, len(src))
	copy(cp, src)
	b.data = cp
	b.copied = cp
	b.owned = true
	return nil
}

// TryAsUTF8Str returns a UTF-8 string view of b's bytes, or ErrInvalidEncoding
// if the bytes are not valid UTF-8.
func (b Bytes) TryAsUTF8Str() (string, error) {
	if !utf8.Valid(b.data) {
		return "", ErrInvalidEncoding
	}
	return string(b.data), nil
}

// AsUTF8StrLossy returns a best-effort string view of b's bytes: valid UTF-8
// is returned as-is, and invalid bytes are simply elided rather than replaced,
// matching the "non-UTF-8 bytes elided" contract used by InnerText.
func (b Bytes) AsUTF8StrLossy() string {
	if utf8.Valid(b.data) {
		return string(b.data)
	}
	out := make([]byte, 0, len(b.data))
	for i := 0; i < len(b.data); {
		r, size := utf8.DecodeRune(b.data[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		out = append(out, b.data[i:i+size]...)
		i += size
	}
	return string(out)
}

// Clone returns a copy of b. A borrowed Bytes shares its backing slice with
// the clone (cheap); an owned Bytes is deep-copied.
func (b Bytes) Clone() Bytes {
	if !b.owned {
		return b
	}
	return NewOwnedBytes(b.data)
}

// Equal reports whether a and b hold identical byte content.
func (a Bytes) Equal(b Bytes) bool {
	return bytes.Equal(a.data, b.data)
}

// Len returns the number of bytes in b.
func (b Bytes) Len() int {
	return len(b.data)
}

// String implements fmt.Stringer using the lossy UTF-8 view, for convenient
// debugging and %v/%s formatting.
func (b Bytes) String() string {
	return b.AsUTF8StrLossy()
}

