// Package encoding decodes the %XX escaped texts accepted by the rxmatch command, so that any byte string can be passed as an argument.
package encoding

import (
	"bytes"
	"fmt"
	"strings"
)

// IsValidEscaping checks whether every % in s starts a complete two digit hex escape.
func IsValidEscaping(s string) bool {
	return invalidEscapeAt(s) == -1
}

// Unescape replaces every %XX escape in s with the byte it encodes. Unlike URL decoding, + is left as is.
// An incomplete or non-hex escape is an error, since the decoded text would otherwise silently differ from what was meant.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	if i := invalidEscapeAt(s); i != -1 {
		return "", fmt.Errorf("invalid escape at offset %d in %q", i, s)
	}

	var buf bytes.Buffer
	buf.Grow(len(s)) // The unescaped text is never longer than the escaped one.
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			buf.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		buf.WriteByte(s[i])
	}
	return buf.String(), nil
}

// Escape is the inverse of Unescape. Printable ASCII other than % is kept, every other byte is escaped.
func Escape(s string) string {
	const hexDigits = "0123456789ABCDEF"

	var buf bytes.Buffer
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c < 0x7f && c != '%' {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(hexDigits[c>>4])
		buf.WriteByte(hexDigits[c&0xf])
	}
	return buf.String()
}

// invalidEscapeAt returns the offset of the first % that does not start a valid escape, or -1.
func invalidEscapeAt(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) {
			return i
		}
		if !isHexChar(s[i+1]) || !isHexChar(s[i+2]) {
			return i
		}
		i += 2
	}
	return -1
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Copied from Go's standard library net/url/url.go.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
