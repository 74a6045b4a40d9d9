package tl

import "bytes"

// HTMLVersion classifies a document's DOCTYPE declaration (§4.F). Detection
// is grounded on the PUBLIC/SYSTEM identifier extraction idiom in
// dpotapov-go-pages/chtml/doctype.go: look for the PUBLIC keyword, then
// pattern-match its identifier string rather than parsing a DTD grammar.
type HTMLVersion uint8

const (
	// VersionUnknown means no DOCTYPE was found, or its identifiers did not
	// match a recognized form.
	VersionUnknown HTMLVersion = iota
	VersionHTML5
	VersionHTML4Strict
	VersionHTML4Transitional
	VersionHTML4Frameset
	VersionXHTML
)

func (v HTMLVersion) String() string {
	switch v {
	case VersionHTML5:
		return "HTML5"
	case VersionHTML4Strict:
		return "HTML 4.01 Strict"
	case VersionHTML4Transitional:
		return "HTML 4.01 Transitional"
	case VersionHTML4Frameset:
		return "HTML 4.01 Frameset"
	case VersionXHTML:
		return "XHTML"
	default:
		return "unknown"
	}
}

// classifyDoctype inspects a <!DOCTYPE ...> declaration's raw bytes (the
// text between "<!DOCTYPE" and the closing ">", not included) and returns
// the HTML version it declares.
func classifyDoctype(body []byte) HTMLVersion {
	lower := bytes.ToLower(body)
	trimmed := bytes.TrimSpace(lower)

	if bytes.Equal(trimmed, []byte("html")) {
		return VersionHTML5
	}

	publicIdx := bytes.Index(lower, []byte("public"))
	if publicIdx < 0 {
		return VersionUnknown
	}
	id := extractQuoted(body[publicIdx:])
	if id == nil {
		return VersionUnknown
	}
	idLower := bytes.ToLower(id)

	switch {
	case bytes.Contains(idLower, []byte("xhtml")):
		return VersionXHTML
	case bytes.Contains(idLower, []byte("frameset")):
		return VersionHTML4Frameset
	case bytes.Contains(idLower, []byte("transitional")):
		return VersionHTML4Transitional
	case bytes.Contains(idLower, []byte("html 4.01")), bytes.Contains(idLower, []byte("html 4.0")):
		return VersionHTML4Strict
	default:
		return VersionUnknown
	}
}

// extractQuoted returns the bytes between the first matching pair of single
// or double quotes found in b, or nil if no such pair exists.
func extractQuoted(b []byte) []byte {
	start := -1
	var quote byte
	for i, c := range b {
		if c == '"' || c == '\'' {
			start = i
			quote = c
			break
		}
	}
	if start < 0 {
		return nil
	}
	for i := start + 1; i < len(b); i++ {
		if b[i] == quote {
			return b[start+1 : i]
		}
	}
	return nil
}
