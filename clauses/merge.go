// Package clauses merges pattern clauses of one function into a single
// dispatching declaration.
//
// A pattern clause is a const declaration of a one-parameter arrow whose
// parameter is a literal:
//
//	fib 0 = 0
//	fib 1 = 1
//	fib n = fib (n - 1) + fib (n - 2)
//
// Consecutive clauses of the same name form a group, closed by the next
// declaration of that name with an identifier parameter (the catch-all).
package clauses

import "github.com/dhamidi/lune/estree"

// unclosedParam names the parameter of a group with no catch-all.
const unclosedParam = "$0"

type clause struct {
	pattern *estree.Literal
	body    estree.Node
}

type group struct {
	decl     *estree.VariableDeclaration
	name     string
	clauses  []clause
	param    string
	catchAll estree.Node
}

func patternClause(st estree.Statement) (string, clause, bool) {
	name, init, ok := estree.DeclName(st)
	if !ok {
		return "", clause{}, false
	}
	fn, ok := init.(*estree.ArrowFunctionExpression)
	if !ok || len(fn.Params) != 1 {
		return "", clause{}, false
	}
	lit, ok := fn.Params[0].(*estree.Literal)
	if !ok {
		return "", clause{}, false
	}
	return name, clause{pattern: lit, body: fn.Body}, true
}

func catchAll(st estree.Statement, name string) (string, estree.Node, bool) {
	n, init, ok := estree.DeclName(st)
	if !ok || n != name {
		return "", nil, false
	}
	fn, ok := init.(*estree.ArrowFunctionExpression)
	if !ok || len(fn.Params) != 1 {
		return "", nil, false
	}
	id, ok := fn.Params[0].(*estree.Identifier)
	if !ok {
		return "", nil, false
	}
	return id.Name, fn.Body, true
}

// Merge returns body with every clause group replaced by one declaration.
// Statements outside groups are kept as they are. Merge never modifies
// body; merging an already merged body returns an equal body.
func Merge(body []estree.Statement) []estree.Statement {
	out := make([]estree.Statement, 0, len(body))
	for i := 0; i < len(body); {
		name, first, ok := patternClause(body[i])
		if !ok {
			out = append(out, body[i])
			i++
			continue
		}
		g := &group{decl: body[i].(*estree.VariableDeclaration), name: name, clauses: []clause{first}}
		i++
		for i < len(body) {
			n, c, ok := patternClause(body[i])
			if !ok || n != name {
				break
			}
			g.clauses = append(g.clauses, c)
			i++
		}
		if i < len(body) {
			if param, b, ok := catchAll(body[i], name); ok {
				g.param, g.catchAll = param, b
				i++
			}
		}
		out = append(out, g.merge())
	}
	return out
}

func (g *group) merge() *estree.VariableDeclaration {
	param := g.param
	if g.catchAll == nil {
		param = unclosedParam
	}
	x := estree.Ident(param)

	var fn *estree.ArrowFunctionExpression
	if len(g.clauses) == 1 {
		alternate := estree.Expression(estree.Ident("undefined"))
		if g.catchAll != nil {
			alternate = asExpression(g.catchAll)
		}
		c := g.clauses[0]
		fn = estree.Arrow(estree.Params(param),
			estree.Conditional(estree.Binary("===", x, c.pattern), asExpression(c.body), alternate))
	} else {
		cases := make([]*estree.SwitchCase, 0, len(g.clauses)+1)
		for _, c := range g.clauses {
			cases = append(cases, estree.Case(c.pattern, asStatements(c.body)...))
		}
		if g.catchAll != nil {
			cases = append(cases, estree.Case(nil, asStatements(g.catchAll)...))
		}
		fn = estree.ArrowBlock(estree.Params(param), []estree.Statement{estree.Switch(x, cases...)})
	}

	merged := estree.Const(g.name, fn)
	merged.LeadingComments = g.decl.LeadingComments
	return merged
}

// asExpression turns a function body into an expression; block bodies are
// run in place.
func asExpression(body estree.Node) estree.Expression {
	if b, ok := body.(*estree.BlockStatement); ok {
		return estree.IIFE(b.Body)
	}
	return body.(estree.Expression)
}

// asStatements turns a function body into statements ending in a return.
func asStatements(body estree.Node) []estree.Statement {
	if b, ok := body.(*estree.BlockStatement); ok {
		return b.Body
	}
	return []estree.Statement{estree.Return(body.(estree.Expression))}
}
