package grammar

import (
	"regexp"
	"strings"

	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

// Inline whitespace never spans lines.
var ws = pc.Regexp("whitespace", `[ \t]*`)

// lineBreak consumes the end of the current line, any following blank or
// comment-only lines, and the indentation of the next line.
var lineBreak = pc.Regexp("newline", `(?:[ \t]*(?:--[^\n]*)?\r?\n)+[ \t]*`)

// topBreak ends a top-level line. Comment-only lines at column 0 are left
// for the comment parser; indented ones are skipped.
var topBreak = pc.Regexp("newline", `[ \t]*(?:--[^\n]*)?\r?\n(?:[ \t]*\r?\n|[ \t]+--[^\n]*\r?\n)*`)

var trailing = pc.Regexp("end of input", `(?:[ \t]*(?:--[^\n]*)?\r?\n)*[ \t]*(?:--[^\n]*)?`)

var skipLines = pc.Optional(lineBreak)

// stmtEnd looks for the end of a statement without consuming it: a
// separator, a line end, end of input, or a closing bracket.
var stmtEnd = pc.Lookahead(pc.Regexp("end of statement", `[ \t]*(?:--[^\n]*)?(?:;|\r?\n|$|[)\]}])`))

func lexeme[T any](p pc.Parser[T]) pc.Parser[T] {
	return pc.Then(ws, p)
}

// sym matches punctuation after optional inline whitespace.
func sym(s string) pc.Parser[string] {
	return lexeme(pc.Text("'"+s+"'", s))
}

func wordParser(k string) pc.Parser[string] {
	return lexeme(pc.Regexp(k, regexp.QuoteMeta(k)+`\b`))
}

// keywordParsers holds one compiled parser per keyword.
var keywordParsers = func() map[string]pc.Parser[string] {
	m := make(map[string]pc.Parser[string], len(keywords))
	for k := range keywords {
		m[k] = wordParser(k)
	}
	return m
}()

// keyword matches a whole word.
func keyword(k string) pc.Parser[string] {
	if p, ok := keywordParsers[k]; ok {
		return p
	}
	return wordParser(k)
}

// eq is a single '=' that does not start '=='.
var eq = lexeme(pc.NotFollowedBy(pc.Text("'='", "="), pc.Text("", "=")))

var arrow = sym("->")

var bindArrow = sym("<-")

var comma = sym(",")

var word = pc.Regexp("identifier", `[A-Za-z_][A-Za-z0-9_]*`)

// identifier rejects keywords and the reserved I/O names.
var identifier = lexeme(pc.Where(word, "reserved", func(w string) bool {
	return !isReserved(w)
}))

var ioFunctionName = lexeme(pc.Where(word, "I/O function", func(w string) bool {
	return ioFunctions[w]
}))

var ioMethodName = pc.Where(word, "I/O method", func(w string) bool {
	return ioMethods[w]
})

// propertyName follows a '.'; keywords are fine there but I/O method names
// belong to I/O method calls.
var propertyName = pc.Where(word, "reserved", func(w string) bool {
	return !ioMethods[w]
})

var numberLiteral = lexeme(pc.Map(pc.Regexp("number", `[0-9]+(?:\.[0-9]+)?`), func(raw string) estree.Expression {
	return estree.NumberLiteral(raw)
}))

var stringLiteral = lexeme(pc.Map(pc.Regexp("string", `'(?:[^'\\\n]|\\.)*'|"(?:[^"\\\n]|\\.)*"`), func(raw string) *estree.Literal {
	return estree.RawStringLiteral(unescape(raw[1:len(raw)-1]), raw)
}))

var boolLiteral = pc.Choice(
	pc.Map(keyword("true"), func(string) estree.Expression { return estree.BoolLiteral(true) }),
	pc.Map(keyword("false"), func(string) estree.Expression { return estree.BoolLiteral(false) }),
)

var nullLiteral = pc.Map(keyword("null"), func(string) estree.Expression { return estree.NullLiteral() })

// regexLiteral is only tried where an operand is expected, so '/' as
// division never reaches it.
var regexLiteral = lexeme(pc.Map(pc.RegexpGroups("regex", `/((?:\\.|[^/\\\n ])(?:\\.|[^/\\\n])*)/([gimsuy]*)`), func(m []string) estree.Expression {
	return estree.RegExpLiteral(m[1], m[2])
}))

var lineComment = pc.Map(pc.RegexpGroups("comment", `--([^\n]*)`), func(m []string) *estree.Comment {
	return estree.LineComment(m[1])
})

var blockComment = pc.Map(pc.RegexpGroups("comment", `\{-((?s:.*?))-\}`), func(m []string) *estree.Comment {
	return estree.BlockComment(m[1])
})

var comment = pc.Choice(lineComment, blockComment)

var unescaper = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\'`, "'",
	`\"`, `"`,
	`\\`, `\`,
)

func unescape(s string) string {
	return unescaper.Replace(s)
}
