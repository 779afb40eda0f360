package goengine

import (
	"regexp/syntax"
)

// ResumeExpr rewrites expr into an expression that matches a text exactly when expr matches it
// starting at or after its second character. The first character is consumed only as context,
// so searching text[at-w:] with the result, where w is the width of the rune before at, finds
// the matches of expr that start at or after at while assertions still see the preceding rune.
//
// The result is built from the parsed syntax tree rather than by string concatenation, so that
// flags and unterminated \Q quoting in expr stay scoped to expr.
func ResumeExpr(expr string) (string, error) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return "", err
	}

	skip := &syntax.Regexp{
		Op:    syntax.OpStar,
		Flags: syntax.NonGreedy,
		Sub:   []*syntax.Regexp{{Op: syntax.OpAnyChar}},
	}
	resume := &syntax.Regexp{
		Op: syntax.OpConcat,
		Sub: []*syntax.Regexp{
			{Op: syntax.OpBeginText},
			{Op: syntax.OpAnyChar},
			skip,
			re,
		},
	}
	return resume.String(), nil
}
