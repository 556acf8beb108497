package grammar

import (
	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

// Names of the effect runtime's combinators.
const (
	runtimeBind = "bind"
	runtimeMap  = "map"
	runtimeThen = "then"
)

type doKind int

const (
	doSync doKind = iota
	doLet
	doBind
	doReturn
)

// doStmt is one parsed statement of a do block.
type doStmt struct {
	kind   doKind
	ids    []string            // doBind: names bound to the effect's result
	effect estree.Expression   // doBind
	sync   []estree.Statement  // doSync
	binds  []binding           // doLet
	values []estree.Expression // doReturn
}

// doState is the desugaring accumulator. Every method returns a new value;
// slices are copied, never shared between states.
type doState struct {
	chain     estree.Expression
	carried   []string
	packed    bool
	pending   []estree.Statement
	propagate []string
	// outer holds the statements of enclosing blocks opened by a let that
	// shadows a name of the current scope; pending is the innermost block.
	outer [][]estree.Statement
	// scope names what the innermost block already declares, including
	// the parameters of the callback it belongs to.
	scope []string
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// inScope drops repeated names and the names in rebound, keeping the order
// of first appearance.
func inScope(names, rebound []string) []string {
	var out []string
	for _, n := range names {
		if !contains(out, n) && !contains(rebound, n) {
			out = append(out, n)
		}
	}
	return out
}

func distinct(names []string) bool {
	return len(inScope(names, nil)) == len(names)
}

// carriedParams is the parameter list of the next callback on the chain.
// A single unpacked name receives the raw value; anything else arrives as
// an array.
func (s doState) carriedParams() []estree.Pattern {
	switch {
	case len(s.carried) == 0:
		return nil
	case len(s.carried) == 1 && !s.packed:
		return estree.Params(s.carried[0])
	default:
		return []estree.Pattern{estree.ArrayPat(s.carried...)}
	}
}

func idParams(ids []string) []estree.Pattern {
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return estree.Params(ids[0])
	default:
		return []estree.Pattern{estree.ArrayPat(ids...)}
	}
}

// body closes the open blocks around the pending statements and tail.
func (s doState) body(tail ...estree.Statement) []estree.Statement {
	out := concat(s.pending, tail)
	for i := len(s.outer) - 1; i >= 0; i-- {
		out = concat(s.outer[i], []estree.Statement{estree.Block(out...)})
	}
	return out
}

// callback is the next link's function: the pending statements followed
// by returning result.
func (s doState) callback(result estree.Expression) *estree.ArrowFunctionExpression {
	if len(s.outer) == 0 {
		return estree.ArrowReturning(s.carriedParams(), s.pending, result)
	}
	return estree.ArrowBlock(s.carriedParams(), s.body(estree.Return(result)))
}

func (s doState) withSync(stmts []estree.Statement) doState {
	next := s
	next.pending = concat(s.pending, stmts)
	return next
}

// withLet declares names for the rest of the block. A name the innermost
// block already declares opens a nested block for the new declaration.
func (s doState) withLet(decl estree.Statement, names []string) doState {
	next := s
	for _, n := range names {
		if contains(s.scope, n) {
			next.outer = concat(s.outer, [][]estree.Statement{s.pending})
			next.pending = nil
			next.scope = nil
			break
		}
	}
	next.pending = concat(next.pending, []estree.Statement{decl})
	next.scope = concat(next.scope, names)
	next.propagate = concat(s.propagate, names)
	return next
}

// bind appends an effect to the chain. Names in scope are threaded through
// the effect's result so later links still see them, unless ids rebinds
// them.
func (s doState) bind(ids []string, effect estree.Expression) doState {
	keep := inScope(concat(s.carried, s.propagate), ids)
	link := effect
	if len(keep) > 0 {
		link = estree.MethodCall(effect, runtimeMap,
			estree.Arrow(idParams(ids), estree.Array(estree.Idents(concat(keep, ids))...)))
	}

	next := doState{}
	switch {
	case s.chain == nil && len(s.pending) == 0 && len(s.outer) == 0:
		next.chain = link
	case s.chain == nil:
		next.chain = estree.IIFE(s.body(estree.Return(link)))
	default:
		next.chain = estree.MethodCall(s.chain, runtimeBind, s.callback(link))
	}
	if len(keep) == 0 {
		next.carried = concat(nil, ids)
		next.packed = len(ids) > 1
	} else {
		next.carried = concat(keep, ids)
		next.packed = true
	}
	next.scope = concat(nil, next.carried)
	return next
}

// letGroups splits bindings into declarations that never name the same
// identifier twice.
func letGroups(bs []binding) [][]binding {
	var groups [][]binding
	var group []binding
	for _, b := range bs {
		for _, seen := range group {
			if seen.name == b.name {
				groups = append(groups, group)
				group = nil
				break
			}
		}
		group = append(group, b)
	}
	return append(groups, group)
}

func (s doState) apply(st doStmt) doState {
	switch st.kind {
	case doBind:
		return s.bind(st.ids, st.effect)
	case doLet:
		next := s
		for _, group := range letGroups(st.binds) {
			next = next.withLet(declaration(group), bindingNames(group))
		}
		return next
	default:
		return s.withSync(st.sync)
	}
}

// finish closes the block with the values of its return statement, if any.
func (s doState) finish(values []estree.Expression) estree.Expression {
	var result estree.Expression
	switch len(values) {
	case 0:
	case 1:
		result = values[0]
	default:
		result = estree.Array(values...)
	}

	switch {
	case s.chain == nil && result != nil:
		return estree.IIFE(s.body(estree.Return(result)))
	case s.chain == nil:
		return estree.IIFE(s.body())
	case result != nil:
		return estree.MethodCall(s.chain, runtimeMap, s.callback(result))
	default:
		return estree.MethodCall(s.chain, runtimeThen, estree.ArrowBlock(s.carriedParams(), s.body()))
	}
}

// doBlock parses 'do' and its statements and desugars them in order.
// Statements sit on their own lines at the indentation of the first one,
// which must be deeper than the line holding 'do', or follow each other on
// one line separated by ';'.
func (g *grammar) doBlock(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	doIndent := cur.Indent()
	_, at, ok := keyword("do")(cur)
	if !ok {
		return nil, cur, false
	}
	blockIndent := -1
	if _, next, ok := pc.Indented(lineBreak, "indentation", func(n int) bool { return n > doIndent })(at); ok {
		at = next
		blockIndent = at.Indent()
	}
	newline := pc.Indented(lineBreak, "indentation", func(n int) bool { return n == blockIndent })
	sep := pc.Choice(
		pc.Then(sym(";"), pc.Map(pc.Optional(newline), func(pc.Maybe[string]) string { return ";" })),
		newline,
	)

	state := doState{}
	st, at, ok := g.doStatement(at)
	if !ok {
		return nil, cur, false
	}
	for {
		if st.kind == doReturn {
			return state.finish(st.values), at, true
		}
		state = state.apply(st)
		_, afterSep, ok := sep(at)
		if !ok {
			return state.finish(nil), at, true
		}
		st, at, ok = g.doStatement(afterSep)
		if !ok {
			return nil, cur, false
		}
	}
}

type doParser = pc.Parser[doStmt]

func (g *grammar) doStatement(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	return pc.Choice(
		doParser(g.returnStmt),
		doParser(g.letStmt),
		doParser(g.maybeStmt),
		doParser(g.deleteStmt),
		doParser(g.definePropStmt),
		doParser(g.bindStmt),
		doParser(g.exprStmt),
	)(cur)
}

func (g *grammar) returnStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	values := pc.Optional(pc.SepBy1(exprParser(g.expression), comma))
	return pc.Map(pc.Then(keyword("return"), values), func(v pc.Maybe[[]estree.Expression]) doStmt {
		return doStmt{kind: doReturn, values: v.Value}
	})(cur)
}

// letStmt declares names for the rest of the block. Followed by 'in' it is
// a let expression run in place.
func (g *grammar) letStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	bs, next, ok := g.letHead(cur)
	if !ok {
		return doStmt{}, cur, false
	}
	if e, after, ok := g.letIn(bs)(next); ok {
		return localStmt(e), after, true
	}
	return doStmt{kind: doLet, binds: bs}, next, true
}

// maybeTests maps each maybe keyword to the test it guards its handler with.
var maybeTests = map[string]func(estree.Expression) estree.Expression{
	"maybeTrue":      func(e estree.Expression) estree.Expression { return estree.Binary("===", e, estree.BoolLiteral(true)) },
	"maybeFalse":     func(e estree.Expression) estree.Expression { return estree.Binary("===", e, estree.BoolLiteral(false)) },
	"maybeNull":      func(e estree.Expression) estree.Expression { return estree.Binary("===", e, estree.NullLiteral()) },
	"maybeUndefined": func(e estree.Expression) estree.Expression { return estree.Binary("===", e, estree.Ident("undefined")) },
	"maybeErr":       func(e estree.Expression) estree.Expression { return estree.Binary("instanceof", e, estree.Ident("Error")) },
}

var maybeKeyword = pc.Choice(
	keyword("maybeTrue"),
	keyword("maybeFalse"),
	keyword("maybeNull"),
	keyword("maybeUndefined"),
	keyword("maybeErr"),
)

func (g *grammar) maybeStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	arg := lexeme(exprParser(g.primary))
	p := pc.Seq3(maybeKeyword, arg, arg)
	return pc.Map(p, func(v pc.Triple[string, estree.Expression, estree.Expression]) doStmt {
		kw, cond, handler := v.First, v.Second, v.Third
		call := estree.Call(handler)
		if kw == "maybeErr" {
			call = estree.Call(handler, cond)
		}
		stmt := estree.If(maybeTests[kw](cond), estree.Block(estree.ExprStmt(call)), nil)
		return doStmt{kind: doSync, sync: []estree.Statement{stmt}}
	})(cur)
}

func (g *grammar) deleteStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	p := pc.Then(keyword("delete"), lexeme(exprParser(g.primary)))
	return pc.Map(p, func(target estree.Expression) doStmt {
		return doStmt{kind: doSync, sync: []estree.Statement{estree.ExprStmt(estree.Unary("delete", target))}}
	})(cur)
}

func (g *grammar) definePropStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	arg := lexeme(exprParser(g.primary))
	p := pc.Then(keyword("defineProp"), pc.Seq3(arg, arg, arg))
	return pc.Map(p, func(v pc.Triple[estree.Expression, estree.Expression, estree.Expression]) doStmt {
		descriptor := estree.Object(
			estree.Prop(estree.Ident("value"), v.Third),
			estree.Prop(estree.Ident("enumerable"), estree.BoolLiteral(true)),
		)
		call := estree.Call(estree.Path("Object.defineProperty"), v.First, v.Second, descriptor)
		return doStmt{kind: doSync, sync: []estree.Statement{estree.ExprStmt(call)}}
	})(cur)
}

// bindStmt is 'a <- eff' or 'a, b <- eff'.
func (g *grammar) bindStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	ids := pc.Skip(pc.SepBy1(identifier, comma), bindArrow)
	p := pc.Seq2(ids, pc.Then(skipLines, exprParser(g.expression)))
	v, next, ok := p(cur)
	if !ok {
		return doStmt{}, cur, false
	}
	if !distinct(v.First) {
		reject(next, "duplicate name")
		return doStmt{}, cur, false
	}
	return doStmt{kind: doBind, ids: v.First, effect: v.Second}, next, true
}

// reject records a failure where the statement ending at cur stops.
func reject(cur pc.Cursor, name string) {
	_, at, _ := ws(cur)
	at.Diagnostics().Fail(at, name)
}

func effectStmt(e estree.Expression) doStmt {
	return doStmt{kind: doBind, effect: e}
}

func localStmt(e estree.Expression) doStmt {
	return doStmt{kind: doSync, sync: []estree.Statement{estree.ExprStmt(e)}}
}

// exprStmt runs an expression. An I/O call, an I/O method call or a nested
// do block ends the statement and is sequenced on the chain; anything else
// runs in place, typically a call of a local function. The leading
// application is read once and an operator chain continues from it. An
// effect used as the left operand of an operator is rejected.
func (g *grammar) exprStmt(cur pc.Cursor) (doStmt, pc.Cursor, bool) {
	if _, _, ok := keyword("do")(cur); ok {
		return pc.Map(exprParser(g.doBlock), effectStmt)(cur)
	}
	a, next, ok := g.apply(cur)
	if !ok {
		rest := pc.Choice(exprParser(g.ifExpr), exprParser(g.lambda), exprParser(g.unaryChain))
		return pc.Map(rest, localStmt)(cur)
	}
	if _, _, ok := stmtEnd(next); ok && a.effect {
		return effectStmt(a.expr), next, true
	}
	e, after, saw, ok := g.climbFrom(a.expr, next)
	if !ok {
		return doStmt{}, cur, false
	}
	if a.effect && saw {
		reject(after, "effect operand")
		return doStmt{}, cur, false
	}
	return localStmt(e), after, true
}
