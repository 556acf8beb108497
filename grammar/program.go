package grammar

import (
	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

var leadingBlankLines = pc.Regexp("newline", `(?:[ \t]*\r?\n)*`)

// topStatement is a declaration or, failing that, an expression
// statement.
func (g *grammar) topStatement(cur pc.Cursor) (estree.Statement, pc.Cursor, bool) {
	return pc.Choice(
		pc.Map(pc.Parser[*estree.VariableDeclaration](g.declaration), func(d *estree.VariableDeclaration) estree.Statement {
			return d
		}),
		pc.Map(exprParser(g.expression), func(e estree.Expression) estree.Statement {
			return estree.ExprStmt(e)
		}),
	)(cur)
}

func attachComments(st estree.Statement, comments []*estree.Comment) {
	if len(comments) == 0 {
		return
	}
	switch st := st.(type) {
	case *estree.VariableDeclaration:
		st.LeadingComments = comments
	case *estree.ExpressionStatement:
		st.LeadingComments = comments
	}
}

// program reads top-level lines. Statements and full-line comments start
// at column 0; comments are held until the next statement and attached to
// it, and comments after the last statement go to the program.
func (g *grammar) program(cur pc.Cursor) (*estree.Program, pc.Cursor, bool) {
	var body []estree.Statement
	var comments []*estree.Comment

	_, at, _ := leadingBlankLines(cur)
	for !at.AtEOF() {
		if at.Indent() != 0 {
			at.Diagnostics().Fail(at.Advance(at.Indent()), "indentation")
			return nil, at, false
		}
		if c, next, ok := comment(at); ok {
			comments = append(comments, c)
			at = next
		} else if st, next, ok := g.topStatement(at); ok {
			if g.cfg.comments {
				attachComments(st, comments)
			}
			comments = nil
			body = append(body, st)
			at = next
		} else {
			break
		}
		_, next, ok := topBreak(at)
		if !ok {
			break
		}
		at = next
	}

	_, at, _ = trailing(at)
	if _, _, ok := pc.EOF()(at); !ok {
		return nil, at, false
	}
	prog := estree.NewProgram(body)
	if g.cfg.comments {
		prog.Comments = comments
	}
	return prog, at, true
}
