package tl

// isIdent reports whether b is an admissible identifier byte: ASCII letters,
// ASCII digits, and '-', '_', ':', '+', '/'. This predicate defines the
// admissible tag-name, id, class, and attribute-name character set (§4.B).
// Grounded verbatim on original_source/src/util.rs: is_ident.
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

// matchesCaseInsensitive reports whether input has the same length as fixed
// and is equal to it after ASCII-lowercasing both sides.
func matchesCaseInsensitive(input []byte, fixed string) bool {
	if len(input) != len(fixed) {
		return false
	}
	for i := range input {
		if asciiLower(input[i]) != asciiLower(fixed[i]) {
			return false
		}
	}
	return true
}

// find returns the index of the first occurrence of needle in buf; ok is
// false (and the index 0) if needle does not occur.
// This is the scalar reference implementation of the SIMD search contract in
// §4.B: any implementation (scalar or vectorized) is conforming as long as it
// returns the same offset.
func find(buf []byte, needle byte) (int, bool) {
	for i, b := range buf {
		if b == needle {
			return i, true
		}
	}
	return 0, false
}

// find4 returns the index of the first occurrence of any of the four needle
// bytes in buf; ok is false (and the index 0) if none occurs.
func find4(buf []byte, needle [4]byte) (int, bool) {
	for i, b := range buf {
		if b == needle[0] || b == needle[1] || b == needle[2] || b == needle[3] {
			return i, true
		}
	}
	return 0, false
}

// searchNonIdent returns the index of the first byte in buf that fails
// isIdent; ok is false (and the index 0) if every byte is an identifier byte
// (including when buf is empty).
func searchNonIdent(buf []byte) (int, bool) {
	for i, b := range buf {
		if !isIdent(b) {
			return i, true
		}
	}
	return 0, false
}
