package codec

import (
	"html"
	"net/url"
	"strings"

	"github.com/erraggy/xutil/xuerrors"
)

const upperHex = "0123456789ABCDEF"

func unreserved(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// URLEncode percent-encodes every byte outside the RFC 3986 unreserved set,
// including '/', so the result is safe as a single path segment or query value.
func URLEncode(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	var b strings.Builder
	b.Grow(len(text) * 3)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String(), nil
}

// URLDecode reverses percent-encoding. '+' is left as is.
func URLDecode(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", xuerrors.Input("text", "input text cannot be empty")
	}
	out, err := url.PathUnescape(text)
	if err != nil {
		return "", &xuerrors.InputError{Field: "text", Message: "malformed percent-encoding", Cause: err}
	}
	return out, nil
}

// HTMLEscape replaces <, >, &, ' and " with HTML entities.
func HTMLEscape(text string) string {
	return html.EscapeString(text)
}

// HTMLUnescape converts named and numeric character references back to text.
func HTMLUnescape(text string) string {
	return html.UnescapeString(text)
}
