package tl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyDoctypeHTML5(t *testing.T) {
	require.Equal(t, VersionHTML5, classifyDoctype([]byte("html")))
	require.Equal(t, VersionHTML5, classifyDoctype([]byte("  HTML  ")))
}

func TestClassifyDoctypeHTML4Strict(t *testing.T) {
	body := []byte(`HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`)
	require.Equal(t, VersionHTML4Strict, classifyDoctype(body))
}

func TestClassifyDoctypeHTML4Transitional(t *testing.T) {
	body := []byte(`HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"`)
	require.Equal(t, VersionHTML4Transitional, classifyDoctype(body))
}

func TestClassifyDoctypeHTML4Frameset(t *testing.T) {
	body := []byte(`HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN"`)
	require.Equal(t, VersionHTML4Frameset, classifyDoctype(body))
}

func TestClassifyDoctypeXHTML(t *testing.T) {
	body := []byte(`html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN"`)
	require.Equal(t, VersionXHTML, classifyDoctype(body))
}

func TestClassifyDoctypeUnknown(t *testing.T) {
	require.Equal(t, VersionUnknown, classifyDoctype([]byte("nonsense declaration")))
	require.Equal(t, VersionUnknown, classifyDoctype([]byte(`HTML PUBLIC unquoted`)))
}

func TestExtractQuoted(t *testing.T) {
	require.Equal(t, []byte("hello"), extractQuoted([]byte(`"hello"`)))
	require.Equal(t, []byte("hello"), extractQuoted([]byte(`'hello'`)))
	require.Nil(t, extractQuoted([]byte(`no quotes here`)))
	require.Nil(t, extractQuoted([]byte(`"unterminated`)))
}

func TestHTMLVersionString(t *testing.T) {
	require.Equal(t, "HTML5", VersionHTML5.String())
	require.Equal(t, "unknown", VersionUnknown.String())
}
