package grammar

import (
	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/clauses"
	"github.com/dhamidi/lune/estree"
)

var literalPattern = pc.Map(
	pc.Choice(
		numberLiteral,
		pc.Map(stringLiteral, func(l *estree.Literal) estree.Expression { return l }),
		boolLiteral,
		nullLiteral,
	),
	func(e estree.Expression) estree.Pattern { return e.(*estree.Literal) },
)

var paramPattern = pc.Choice(
	pc.Map(identifier, func(name string) estree.Pattern { return estree.Ident(name) }),
	literalPattern,
)

// params allows a literal only as the sole parameter, which makes the
// declaration a pattern clause.
var params = pc.Where(pc.Many(paramPattern), "pattern", func(ps []estree.Pattern) bool {
	if len(ps) < 2 {
		return true
	}
	for _, p := range ps {
		if _, ok := p.(*estree.Literal); ok {
			return false
		}
	}
	return true
})

// guardBar is '|' but not '||'.
var guardBar = lexeme(pc.NotFollowedBy(pc.Text("'|'", "|"), pc.Text("", "|")))

type guard struct {
	test  estree.Expression
	value estree.Expression
}

// continuation moves to a new line when that line is indented deeper than
// indent; staying on the current line also matches.
func continuation(indent int) pc.Parser[pc.Maybe[string]] {
	return pc.Optional(pc.Indented(lineBreak, "indentation", func(n int) bool { return n > indent }))
}

// equation is '= body', with the body allowed on a deeper line.
func (g *grammar) equation(indent int) exprParser {
	return pc.Then(pc.Then(eq, continuation(indent)), exprParser(g.expression))
}

func (g *grammar) guard(indent int) pc.Parser[guard] {
	p := pc.Seq2(
		pc.Then(pc.Then(continuation(indent), guardBar), exprParser(g.expression)),
		g.equation(indent),
	)
	return pc.Map(p, func(v pc.Pair[estree.Expression, estree.Expression]) guard {
		return guard{test: v.First, value: v.Second}
	})
}

// missingOtherwise records the end of an unterminated guard chain where the
// '| otherwise' clause was expected.
func missingOtherwise() exprParser {
	return func(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
		_, at, _ := skipLines(cur)
		_, at, _ = ws(at)
		return pc.Expect[estree.Expression]("otherwise")(at)
	}
}

// guards folds '| c1 = v1 | c2 = v2 | otherwise = v' into
// c1 ? v1 : c2 ? v2 : v.
func (g *grammar) guards(indent int) exprParser {
	otherwise := pc.Then(
		pc.Then(pc.Then(continuation(indent), guardBar), keyword("otherwise")),
		g.equation(indent),
	)
	p := pc.Seq2(pc.Many1(g.guard(indent)), pc.Choice(otherwise, missingOtherwise()))
	return pc.Map(p, func(v pc.Pair[[]guard, estree.Expression]) estree.Expression {
		e := v.Second
		for i := len(v.First) - 1; i >= 0; i-- {
			e = estree.Conditional(v.First[i].test, v.First[i].value, e)
		}
		return e
	})
}

// where parses a where block: the keyword on the declaration's line or a
// deeper one, then local declarations on their own lines, all at the
// indentation of the first, which must be deeper than the where line.
func (g *grammar) where(indent int) pc.Parser[[]estree.Statement] {
	return func(cur pc.Cursor) ([]estree.Statement, pc.Cursor, bool) {
		_, at, _ := continuation(indent)(cur)
		_, at, ok := keyword("where")(at)
		if !ok {
			return nil, cur, false
		}
		whereIndent := at.Indent()
		_, at, ok = pc.Indented(lineBreak, "indentation", func(n int) bool { return n > whereIndent })(at)
		if !ok {
			return nil, cur, false
		}
		localIndent := at.Indent()
		sep := pc.Indented(lineBreak, "indentation", func(n int) bool { return n == localIndent })
		local := pc.Map(pc.Parser[*estree.VariableDeclaration](g.declaration), func(d *estree.VariableDeclaration) estree.Statement {
			return d
		})
		locals, at, ok := pc.SepBy1(local, sep)(at)
		if !ok {
			return nil, cur, false
		}
		if g.cfg.mergeClauses {
			locals = clauses.Merge(locals)
		}
		return locals, at, true
	}
}

// declaration parses 'name params... = body' or a guarded form, with an
// optional where block.
func (g *grammar) declaration(cur pc.Cursor) (*estree.VariableDeclaration, pc.Cursor, bool) {
	indent := cur.Indent()
	head := pc.Seq2(identifier, params)
	body := pc.Choice(g.equation(indent), g.guards(indent))
	p := pc.Seq3(head, body, pc.Optional(g.where(indent)))
	return pc.Map(p, func(v pc.Triple[pc.Pair[string, []estree.Pattern], estree.Expression, pc.Maybe[[]estree.Statement]]) *estree.VariableDeclaration {
		name, ps, result := v.First.First, v.First.Second, v.Second
		locals := v.Third.Value
		return estree.Const(name, lower(ps, locals, result))
	})(cur)
}

// lower builds the initializer of a declaration from its parameters, its
// where locals and its body.
func lower(ps []estree.Pattern, locals []estree.Statement, result estree.Expression) estree.Expression {
	switch {
	case len(ps) == 0 && len(locals) == 0:
		return result
	case len(ps) == 0:
		return estree.IIFE(append(append([]estree.Statement{}, locals...), estree.Return(result)))
	default:
		return estree.ArrowReturning(ps, locals, result)
	}
}
