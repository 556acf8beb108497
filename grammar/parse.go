// Package grammar parses lune source text into an ESTree program.
//
// Parsing is a single backtracking pass built from the combinator package.
// do blocks are desugared while they are parsed; same-named pattern clauses
// are merged once the whole program has been read.
package grammar

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/lithammer/fuzzysearch/fuzzy"

	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/clauses"
	"github.com/dhamidi/lune/estree"
)

type config struct {
	file         string
	comments     bool
	mergeClauses bool
	operators    []Operator
}

type Option func(*config)

// WithFile names the source in error messages.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

// WithComments keeps top-level comments in the output tree.
func WithComments() Option {
	return func(c *config) {
		c.comments = true
	}
}

func WithoutClauseMerging() Option {
	return func(c *config) {
		c.mergeClauses = false
	}
}

// WithOperators replaces the binary operator table.
func WithOperators(ops []Operator) Option {
	return func(c *config) {
		c.operators = append([]Operator(nil), ops...)
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{mergeClauses: true, operators: DefaultOperators()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Source is the text to parse and the position of its first character.
// A zero Line is treated as line 1.
type Source struct {
	Text   string
	Line   int
	Column int
}

func (s Source) start() (int, int) {
	if s.Line == 0 {
		return 1, s.Column
	}
	return s.Line, s.Column
}

// ParseError reports the furthest position the parser could not get past.
type ParseError struct {
	File     string
	Line     int
	Column   int
	Msg      string
	Expected []string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *ParseError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error  bool   `json:"error"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Msg    string `json:"msg"`
	}{true, e.Line, e.Column, e.Msg})
}

// messages resolves the names attempted at the failure position. The
// first entry whose name was attempted wins.
var messages = []struct {
	name string
	msg  string
}{
	{"effect operand", "bind the result of an I/O effect with '<-' before using it in an expression"},
	{"duplicate name", "a bind statement cannot name the same identifier twice"},
	{"otherwise", "guard chain must end with '| otherwise = ...'"},
	{"trailing comma", "trailing comma before '}'"},
	{"pattern", "a literal pattern must be the only parameter"},
	{"reserved", "reserved word cannot be used as a name"},
	{"then", "expected 'then' after the condition"},
	{"else", "if expression requires an 'else' branch"},
	{"in", "expected 'in' after let bindings"},
	{"'->'", "expected '->' after lambda parameters"},
	{"'<-'", "expected '<-' in bind statement"},
	{"')'", "unclosed '('"},
	{"']'", "unclosed '['"},
	{"'}'", "unclosed '{'"},
	{"':'", "expected ':' after object key"},
	{"indentation", "unexpected indentation"},
	{"string", "unterminated string"},
}

const fallbackMessage = "unexpected token"

var wordAt = regexp.MustCompile(`\A[ \t]*([A-Za-z_][A-Za-z0-9_]*)`)

// suggest returns the keyword closest to the word at offset, if it is a
// likely misspelling.
func suggest(text string, offset int) (string, bool) {
	if offset > len(text) {
		return "", false
	}
	m := wordAt.FindStringSubmatch(text[offset:])
	if m == nil || len(m[1]) < 3 || isReserved(m[1]) {
		return "", false
	}
	best, bestDist := "", 3
	for _, kw := range Keywords() {
		if d := fuzzy.LevenshteinDistance(m[1], kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

func newParseError(cfg *config, src Source, cur pc.Cursor, diag *pc.Diagnostics) *ParseError {
	pos, ok := diag.Furthest()
	if !ok {
		pos = cur.Position()
	}
	msg := fallbackMessage
	for _, m := range messages {
		if diag.Attempted(m.name) {
			msg = m.msg
			break
		}
	}
	if ok {
		if kw, found := suggest(src.Text, diag.FurthestOffset()); found {
			msg = fmt.Sprintf("%s (did you mean '%s'?)", msg, kw)
		}
	}
	return &ParseError{
		File:     cfg.file,
		Line:     pos.Line,
		Column:   pos.Column,
		Msg:      msg,
		Expected: diag.Expected(),
	}
}

// Parse parses a whole program.
func Parse(src Source, opts ...Option) (*estree.Program, error) {
	cfg := newConfig(opts)
	g := newGrammar(cfg)
	line, column := src.start()
	diag := pc.NewDiagnostics()
	start := pc.NewCursor(src.Text, line, column, diag)
	prog, end, ok := g.program(start)
	if !ok {
		return nil, newParseError(cfg, src, end, diag)
	}
	if cfg.mergeClauses {
		prog.Body = clauses.Merge(prog.Body)
	}
	return prog, nil
}

// ParseExpression parses src as a single expression.
func ParseExpression(src Source, opts ...Option) (estree.Expression, error) {
	cfg := newConfig(opts)
	g := newGrammar(cfg)
	line, column := src.start()
	p := pc.Skip(pc.Skip(exprParser(g.expression), trailing), pc.EOF())
	e, end, ok, diag := pc.Run(p, src.Text, line, column)
	if !ok {
		return nil, newParseError(cfg, src, end, diag)
	}
	return e, nil
}
