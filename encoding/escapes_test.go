package encoding

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	// Arrange
	type testcase struct {
		inputVal string
		expected string
	}
	tests := []testcase{
		{`hello%20world`, `hello world`},
		{`hello+world`, `hello+world`},
		{`hello%20`, `hello `},
		{`%20`, ` `},
		{``, ``},
		{`%00`, "\x00"},
		{`x%6ax`, `xjx`},
		{`x%6Ax`, `xjx`},
		{`%ff%FE`, "\xff\xfe"},
		{`caf%C3%A9`, "café"},
		{`%25`, `%`},
	}

	// Act and assert
	var b strings.Builder
	for i, test := range tests {
		// Act
		s, err := Unescape(test.inputVal)

		// Assert
		if err != nil || s != test.expected {
			fmt.Fprintf(&b, "Test %v, input %v. Expected: %q. Actual: %q, err: %v\n", i+1, test.inputVal, test.expected, s, err)
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestUnescapeInvalid(t *testing.T) {
	for _, s := range []string{`hello%ggworld`, `hello%2`, `hello%`, `%`, `%2`, `%g0`, `a%0g`} {
		_, err := Unescape(s)
		assert.NotNil(t, err, "input %q", s)
		assert.False(t, IsValidEscaping(s), "input %q", s)
	}
}

func TestIsValidEscaping(t *testing.T) {
	for _, s := range []string{``, `abc`, `%20`, `a%2Fb%2f`, `100%25`} {
		assert.True(t, IsValidEscaping(s), "input %q", s)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	// Arrange
	inputs := []string{"", "plain", "100%", "a\x00b", "\xff\xfe", "café", "tab\there"}

	for _, in := range inputs {
		// Act
		escaped := Escape(in)
		out, err := Unescape(escaped)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, in, out)
		assert.True(t, IsValidEscaping(escaped))
	}

	assert.Equal(t, "caf%C3%A9 100%25", Escape("café 100%"))
}
