package combinator

import (
	"regexp"
	"strings"
)

// Regexp matches pattern at the head of the remaining input and returns the
// matched text. Failures are recorded under name.
func Regexp(name, pattern string) Parser[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return func(c Cursor) (string, Cursor, bool) {
		rest := c.Rest()
		loc := re.FindStringIndex(rest)
		if loc == nil {
			c.Diagnostics().Fail(c, name)
			return "", c, false
		}
		return rest[:loc[1]], c.Advance(loc[1]), true
	}
}

// RegexpGroups is Regexp returning the submatches; index 0 is the whole
// match.
func RegexpGroups(name, pattern string) Parser[[]string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return func(c Cursor) ([]string, Cursor, bool) {
		rest := c.Rest()
		m := re.FindStringSubmatch(rest)
		if m == nil {
			c.Diagnostics().Fail(c, name)
			return nil, c, false
		}
		return m, c.Advance(len(m[0])), true
	}
}

// Text matches lit exactly.
func Text(name, lit string) Parser[string] {
	return func(c Cursor) (string, Cursor, bool) {
		if !strings.HasPrefix(c.Rest(), lit) {
			c.Diagnostics().Fail(c, name)
			return "", c, false
		}
		return lit, c.Advance(len(lit)), true
	}
}

// EOF matches the end of input.
func EOF() Parser[struct{}] {
	return func(c Cursor) (struct{}, Cursor, bool) {
		if !c.AtEOF() {
			c.Diagnostics().Fail(c, "end of input")
			return struct{}{}, c, false
		}
		return struct{}{}, c, true
	}
}
