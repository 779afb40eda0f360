package re2engine

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"testing"

	"rxfacade/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRE2SetSimple(t *testing.T) {
	// Arrange
	assert := assert.New(t)
	s, err := NewEngine().CompileSet([]string{"ab+", "cd+", "ef+"})
	require.NoError(t, err)

	// Act
	ids := s.Matches("aabbccddee")
	sort.Ints(ids)

	// Assert
	assert.Equal([]int{0, 1}, ids)
	assert.True(s.IsMatch("xxefxx"))
	assert.False(s.IsMatch("xyz"))
	assert.Equal(3, s.Len())
}

func TestRE2SetEmpty(t *testing.T) {
	// Arrange
	s, err := NewEngine().CompileSet(nil)
	require.NoError(t, err)

	// Act and assert
	assert.False(t, s.IsMatch("abc"))
	assert.Equal(t, []int{}, s.Matches("abc"))
}

func TestRE2SetNamesFailingPattern(t *testing.T) {
	// Act
	_, err := NewEngine().CompileSet([]string{"ab+", "a(b"})

	// Assert
	var pe *engine.PatternError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Index)
}

func TestRE2SinglePattern(t *testing.T) {
	// Arrange
	assert := assert.New(t)

	// Act
	p, err := NewEngine().Compile(`(?P<key>\w+)=(\w+)?`)
	require.NoError(t, err)

	// Assert
	assert.Equal(2, p.NumSubexp())
	assert.Equal([]string{"", "key", ""}, p.SubexpNames())
	assert.Equal([]int{2, 5}, p.FindIndex("  a=b"))
	assert.Equal([]int{0, 2, 0, 1, -1, -1}, p.FindSubmatchIndex("a="))
	assert.Nil(p.FindIndex("   "))
}

func TestRE2SinglePatternError(t *testing.T) {
	_, err := NewEngine().Compile(`a(b`)
	assert.Error(t, err)
}

func TestRE2AgreesWithRegexp(t *testing.T) {
	patterns := []string{`(a)?b`, `.`, `\b`, `(a*)(b*)`, `a*`, `\w+`, `(é)|(.)`, `(?m)^.`, `n[o0]*b`, `(\d+)-(\d+)`}
	texts := []string{"", "a1b22c", "aé€b", "xyz", "baaac", "Dont say noob say n00b", "12-34 56-78", "a\nb"}

	var b strings.Builder
	for _, expr := range patterns {
		re := regexp.MustCompile(expr)
		p, err := NewEngine().Compile(expr)
		require.NoError(t, err)

		for _, text := range texts {
			// Act
			var got [][]int
			p.FindAllSubmatchIndex(text, func(loc []int) bool {
				got = append(got, loc)
				return true
			})

			// Assert
			if want := re.FindAllStringSubmatchIndex(text, -1); !reflect.DeepEqual(got, want) {
				fmt.Fprintf(&b, "%v on %q: got %v, want %v\n", expr, text, got, want)
			}
			if p.IsMatch(text) != re.MatchString(text) {
				fmt.Fprintf(&b, "%v on %q: IsMatch disagrees\n", expr, text)
			}
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestRE2IsMatchAtKeepsContext(t *testing.T) {
	type testcase struct {
		expr  string
		text  string
		at    int
		match bool
	}
	tests := []testcase{
		{`abc`, "abcabc", 3, true},
		{`abc`, "abcabc", 4, false},
		{`^abc`, "abcabc", 3, false},
		{`(?m)^abc`, "abc\nabc", 4, true},
		{`(?m)^abc`, "abcxabc", 4, false},
		{`\bfoo`, "xfoo", 1, false},
		{`\bfoo`, "x foo", 2, true},
		{`\bfoo`, "éfoo", 2, true},
		{`$`, "abc", 3, true},
		{`a`, "abc", 3, false},
		{`é`, "aéé", 3, true},
	}

	var b strings.Builder
	for _, test := range tests {
		// Arrange
		p, err := NewEngine().Compile(test.expr)
		if err != nil {
			fmt.Fprintf(&b, "Got unexpected error for %v: %s\n", test.expr, err)
			continue
		}

		// Act
		match := p.IsMatchAt(test.text, test.at)

		// Assert
		if match != test.match {
			fmt.Fprintf(&b, "Got unexpected IsMatchAt for %v on %q at %d: %v\n", test.expr, test.text, test.at, match)
		}
	}

	if b.Len() > 0 {
		t.Fatalf("\n%s", b.String())
	}
}

func TestContextChar(t *testing.T) {
	assert.Equal(t, "\n", contextChar("ab\n"))
	assert.Equal(t, "a", contextChar("x_"))
	assert.Equal(t, "a", contextChar("9"))
	assert.Equal(t, "-", contextChar("café"))
	assert.Equal(t, "-", contextChar("a "))
	assert.Equal(t, "-", contextChar("a\xff"))
}

func TestRE2PatternConcurrentUse(t *testing.T) {
	// Arrange
	p, err := NewEngine().Compile(`(\w+)@(\w+)`)
	require.NoError(t, err)
	errs := make(chan string, 16)

	// Act
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				n := 0
				p.FindAllSubmatchIndex("a@b c@d e@f", func(loc []int) bool {
					n++
					return true
				})
				if n != 3 || !p.IsMatchAt("a@b c@d", 4) {
					errs <- fmt.Sprintf("unexpected result, %d matches", n)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	// Assert
	for e := range errs {
		t.Error(e)
	}
}
