package grammar

import (
	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

type exprParser = pc.Parser[estree.Expression]

type grammar struct {
	ops *operatorTable
	cfg *config
}

func newGrammar(cfg *config) *grammar {
	return &grammar{ops: newOperatorTable(cfg.operators), cfg: cfg}
}

// expression is ordered: the keyword-led forms go first, then operator
// chains, which also cover a lone operand.
func (g *grammar) expression(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Choice(
		exprParser(g.ifExpr),
		exprParser(g.letExpr),
		exprParser(g.lambda),
		exprParser(g.doBlock),
		exprParser(g.chain),
	)(cur)
}

// operand is what the precedence engine puts on its operand stack.
func (g *grammar) operand(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Choice(exprParser(g.unary), exprParser(g.call))(cur)
}

var unaryOperator = pc.Choice(
	keyword("typeof"),
	sym("!"),
	lexeme(pc.NotFollowedBy(pc.Text("'-'", "-"), pc.Regexp("", `[->]`))),
)

// unary picks the operand form from the operator: typeof applies to a whole
// call, while '-' and '!' bind to a primary and may nest.
func (g *grammar) unary(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Bind(unaryOperator, func(op string) exprParser {
		var arg exprParser
		if op == "typeof" {
			arg = g.call
		} else {
			arg = pc.Choice(exprParser(g.unary), exprParser(g.primary))
		}
		return pc.Map(arg, func(e estree.Expression) estree.Expression {
			return estree.Unary(op, e)
		})
	})(cur)
}

var unit = pc.Map(pc.Seq2(sym("("), sym(")")), func(pc.Pair[string, string]) []estree.Expression {
	return []estree.Expression{}
})

// arguments of a juxtaposition call: '()' or primaries on the same line.
func (g *grammar) arguments(min int) pc.Parser[[]estree.Expression] {
	args := pc.Many(lexeme(exprParser(g.primary)))
	if min > 0 {
		args = pc.Many1(lexeme(exprParser(g.primary)))
	}
	return pc.Choice(unit, args)
}

// applied is a parsed application. effect marks I/O calls, whose results
// a do-block sequences instead of running in place.
type applied struct {
	expr   estree.Expression
	effect bool
}

func callable(e estree.Expression) bool {
	switch e.(type) {
	case *estree.Identifier, *estree.MemberExpression, *estree.CallExpression, *estree.ArrowFunctionExpression:
		return true
	}
	return false
}

// apply parses one primary and decides what it heads: an I/O method call
// (h.write x), a juxtaposition call (f a b), or nothing. The primary is
// parsed once so nested operands are never re-parsed.
func (g *grammar) apply(cur pc.Cursor) (applied, pc.Cursor, bool) {
	if v, next, ok := g.ioCall(cur); ok {
		return applied{expr: v, effect: true}, next, true
	}
	e, next, ok := g.primary(cur)
	if !ok {
		return applied{}, cur, false
	}
	method := pc.Seq2(pc.Then(pc.Text("'.'", "."), ioMethodName), g.arguments(0))
	if m, after, ok := method(next); ok {
		return applied{expr: estree.MethodCall(e, m.First, m.Second...), effect: true}, after, true
	}
	if callable(e) {
		if args, after, ok := g.arguments(1)(next); ok {
			return applied{expr: estree.Call(e, args...)}, after, true
		}
	}
	return applied{expr: e}, next, true
}

func (g *grammar) call(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Map(pc.Parser[applied](g.apply), func(a applied) estree.Expression { return a.expr })(cur)
}

// ioCall is readFile "a", or a bare readLine, called on the I/O namespace.
func (g *grammar) ioCall(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	p := pc.Seq2(ioFunctionName, g.arguments(0))
	return pc.Map(p, func(v pc.Pair[string, []estree.Expression]) estree.Expression {
		return estree.MethodCall(estree.Ident(ioNamespace), v.First, v.Second...)
	})(cur)
}

type suffix func(estree.Expression) estree.Expression

// primary is an atom followed by any number of .name and [expr] suffixes,
// folded left to right.
func (g *grammar) primary(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	dot := pc.Map(pc.Then(pc.Text("'.'", "."), propertyName), func(name string) suffix {
		return func(obj estree.Expression) estree.Expression { return estree.Member(obj, name) }
	})
	index := pc.Map(pc.Between(pc.Text("'['", "["), exprParser(g.expression), sym("]")), func(prop estree.Expression) suffix {
		return func(obj estree.Expression) estree.Expression { return estree.Index(obj, prop) }
	})
	p := pc.Seq2(exprParser(g.atom), pc.Many(pc.Choice(dot, index)))
	return pc.Map(p, func(v pc.Pair[estree.Expression, []suffix]) estree.Expression {
		e := v.First
		for _, s := range v.Second {
			e = s(e)
		}
		return e
	})(cur)
}

func (g *grammar) atom(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Choice(
		numberLiteral,
		pc.Map(stringLiteral, func(l *estree.Literal) estree.Expression { return l }),
		boolLiteral,
		nullLiteral,
		regexLiteral,
		exprParser(g.paren),
		exprParser(g.array),
		exprParser(g.object),
		pc.Map(identifier, func(name string) estree.Expression { return estree.Ident(name) }),
	)(cur)
}

func (g *grammar) paren(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	open := pc.Then(sym("("), skipLines)
	closing := pc.Then(skipLines, sym(")"))
	return pc.Between(open, exprParser(g.expression), closing)(cur)
}

var elementSep = pc.Then(comma, skipLines)

func (g *grammar) array(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	elem := pc.Skip(exprParser(g.expression), skipLines)
	body := pc.Skip(pc.SepBy(elem, elementSep), pc.Optional(elementSep))
	p := pc.Between(pc.Then(sym("["), skipLines), body, pc.Then(skipLines, sym("]")))
	return pc.Map(p, func(elems []estree.Expression) estree.Expression {
		return estree.Array(elems...)
	})(cur)
}

// objectComma rejects a ',' immediately followed by '}'.
var objectComma pc.Parser[string] = func(cur pc.Cursor) (string, pc.Cursor, bool) {
	v, next, ok := comma(cur)
	if !ok {
		return "", cur, false
	}
	if _, _, closed := pc.Text("", "}")(next); closed {
		next.Diagnostics().Fail(next, "trailing comma")
		return "", cur, false
	}
	return v, next, true
}

func (g *grammar) property(cur pc.Cursor) (*estree.Property, pc.Cursor, bool) {
	key := pc.Choice(
		pc.Map(lexeme(word), func(name string) estree.Expression { return estree.Ident(name) }),
		pc.Map(stringLiteral, func(l *estree.Literal) estree.Expression { return l }),
	)
	p := pc.Seq2(pc.Skip(key, sym(":")), pc.Then(skipLines, exprParser(g.expression)))
	return pc.Map(p, func(v pc.Pair[estree.Expression, estree.Expression]) *estree.Property {
		return estree.Prop(v.First, v.Second)
	})(cur)
}

func (g *grammar) object(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	prop := pc.Skip(pc.Parser[*estree.Property](g.property), skipLines)
	sep := pc.Then(objectComma, skipLines)
	body := pc.Skip(pc.SepBy(prop, sep), pc.Optional(sep))
	p := pc.Between(pc.Then(sym("{"), skipLines), body, pc.Then(skipLines, sym("}")))
	return pc.Map(p, func(props []*estree.Property) estree.Expression {
		return estree.Object(props...)
	})(cur)
}

// lambda is \a b -> body.
func (g *grammar) lambda(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	params := pc.Then(sym(`\`), pc.Many(identifier))
	p := pc.Seq2(pc.Skip(params, arrow), pc.Then(skipLines, exprParser(g.expression)))
	return pc.Map(p, func(v pc.Pair[[]string, estree.Expression]) estree.Expression {
		return estree.Arrow(estree.Params(v.First...), v.Second)
	})(cur)
}

type binding struct {
	name string
	init estree.Expression
}

func (g *grammar) binding(cur pc.Cursor) (binding, pc.Cursor, bool) {
	p := pc.Seq2(pc.Skip(identifier, eq), exprParser(g.expression))
	return pc.Map(p, func(v pc.Pair[string, estree.Expression]) binding {
		return binding{name: v.First, init: v.Second}
	})(cur)
}

func (g *grammar) bindings(cur pc.Cursor) ([]binding, pc.Cursor, bool) {
	return pc.SepBy1(pc.Parser[binding](g.binding), pc.Then(comma, skipLines))(cur)
}

func declaration(bs []binding) *estree.VariableDeclaration {
	d := &estree.VariableDeclaration{Kind: "const"}
	for _, b := range bs {
		d.Declarations = append(d.Declarations, estree.Declarator(b.name, b.init))
	}
	return d
}

func bindingNames(bs []binding) []string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.name
	}
	return names
}

func (g *grammar) letHead(cur pc.Cursor) ([]binding, pc.Cursor, bool) {
	return pc.Then(keyword("let"), pc.Parser[[]binding](g.bindings))(cur)
}

// letIn reads the 'in body' that closes bs into an expression.
func (g *grammar) letIn(bs []binding) exprParser {
	body := pc.Then(pc.Then(skipLines, keyword("in")), pc.Then(skipLines, exprParser(g.expression)))
	return pc.Map(body, func(e estree.Expression) estree.Expression {
		return estree.IIFE([]estree.Statement{declaration(bs), estree.Return(e)})
	})
}

// letExpr is let a = 1, b = 2 in body, evaluated in its own scope.
func (g *grammar) letExpr(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	return pc.Bind(pc.Parser[[]binding](g.letHead), g.letIn)(cur)
}

func (g *grammar) ifExpr(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	p := pc.Seq3(
		pc.Then(keyword("if"), exprParser(g.expression)),
		pc.Then(pc.Then(skipLines, keyword("then")), exprParser(g.expression)),
		pc.Then(pc.Then(skipLines, keyword("else")), exprParser(g.expression)),
	)
	return pc.Map(p, func(v pc.Triple[estree.Expression, estree.Expression, estree.Expression]) estree.Expression {
		return estree.Conditional(v.First, v.Second, v.Third)
	})(cur)
}
