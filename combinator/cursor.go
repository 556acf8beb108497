// Package combinator provides backtracking parser combinators over an
// immutable cursor.
package combinator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cursor is a position in the input. It is passed by value; advancing
// returns a new Cursor and leaves the receiver untouched.
type Cursor struct {
	input  string
	offset int
	line   int
	column int
	indent int
	diag   *Diagnostics
}

// NewCursor returns a cursor at the start of input. Failures of leaf
// parsers run from this cursor are recorded in diag.
func NewCursor(input string, line, column int, diag *Diagnostics) Cursor {
	c := Cursor{
		input:  input,
		line:   line,
		column: column,
		diag:   diag,
	}
	c.indent = leadingSpaces(input)
	return c
}

func (c Cursor) Rest() string {
	return c.input[c.offset:]
}

func (c Cursor) Offset() int {
	return c.offset
}

func (c Cursor) Line() int {
	return c.line
}

func (c Cursor) Column() int {
	return c.column
}

// Indent is the number of leading spaces on the cursor's current line.
func (c Cursor) Indent() int {
	return c.indent
}

func (c Cursor) AtEOF() bool {
	return c.offset >= len(c.input)
}

func (c Cursor) Diagnostics() *Diagnostics {
	return c.diag
}

func (c Cursor) Position() Position {
	return Position{Line: c.line, Column: c.column}
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d(indent %d)", c.line, c.column, c.indent)
}

// Advance consumes n bytes. Newlines move to the next line and reset the
// column; other runes move the column by one.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	if c.offset+n > len(c.input) {
		n = len(c.input) - c.offset
	}
	consumed := c.input[c.offset : c.offset+n]
	next := c
	next.offset += n
	if nl := strings.LastIndexByte(consumed, '\n'); nl >= 0 {
		next.line += strings.Count(consumed, "\n")
		next.column = utf8.RuneCountInString(consumed[nl+1:])
		next.indent = leadingSpaces(c.input[c.offset+nl+1:])
	} else {
		next.column += utf8.RuneCountInString(consumed)
	}
	return next
}

func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// Position is a line/column pair. Lines are as given to NewCursor; columns
// start at the column given to NewCursor and reset to 0 after a newline.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}
