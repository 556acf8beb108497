package grammar

import (
	"strings"

	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

// operator matches the longest symbol from the table at the cursor.
func (g *grammar) operator(cur pc.Cursor) (*Operator, pc.Cursor, bool) {
	_, start, _ := ws(cur)
	rest := start.Rest()
	for _, op := range g.ops.order {
		if !strings.HasPrefix(rest, op.Symbol) {
			continue
		}
		if blocked(op.Symbol, rest[len(op.Symbol):]) {
			continue
		}
		return op, start.Advance(len(op.Symbol)), true
	}
	start.Diagnostics().Fail(start, "operator")
	return nil, cur, false
}

// blocked rejects symbols that are really the start of other tokens: line
// comments, arrows, and member access.
func blocked(symbol, after string) bool {
	switch symbol {
	case "-":
		return strings.HasPrefix(after, "-") || strings.HasPrefix(after, ">")
	case "<":
		return strings.HasPrefix(after, "-")
	case ".":
		return !strings.HasPrefix(after, " ") && !strings.HasPrefix(after, "\t")
	case "==":
		return strings.HasPrefix(after, "=")
	}
	return false
}

// climb runs the two-stack precedence engine. Operands are pushed as they
// are read; before an operator is pushed, every stacked operator it does
// not shift over is reduced. sawOperator reports whether any operator was
// consumed. An operator with no operand after it fails the whole chain.
func (g *grammar) climb(cur pc.Cursor) (e estree.Expression, next pc.Cursor, sawOperator, ok bool) {
	first, at, ok := g.operand(cur)
	if !ok {
		return nil, cur, false, false
	}
	e, next, sawOperator, ok = g.climbFrom(first, at)
	if !ok {
		return nil, cur, false, false
	}
	return e, next, sawOperator, true
}

// climbFrom continues a chain whose first operand has already been read
// and ends at cur.
func (g *grammar) climbFrom(first estree.Expression, cur pc.Cursor) (e estree.Expression, next pc.Cursor, sawOperator, ok bool) {
	operands := []estree.Expression{first}
	ops := []*Operator{sentinel}
	reduce := func() {
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		n := len(operands)
		left, right := operands[n-2], operands[n-1]
		operands = append(operands[:n-2], op.build(left, right))
	}

	at := cur
	for {
		op, afterOp, ok := g.operator(at)
		if !ok {
			break
		}
		_, start, _ := skipLines(afterOp)
		rhs, afterRHS, ok := g.operand(start)
		if !ok {
			return nil, cur, false, false
		}
		for !op.shiftsOver(ops[len(ops)-1]) {
			reduce()
		}
		ops = append(ops, op)
		operands = append(operands, rhs)
		at = afterRHS
		sawOperator = true
	}
	for len(ops) > 1 {
		reduce()
	}
	return operands[0], at, sawOperator, true
}

// binary parses an operator chain and fails when the input holds only a
// single operand, leaving that case to the plain-operand alternative.
func (g *grammar) binary(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	e, next, saw, ok := g.climb(cur)
	if !ok || !saw {
		return nil, cur, false
	}
	return e, next, true
}

// chain is an operator chain or a lone operand, read in one pass.
func (g *grammar) chain(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	e, next, _, ok := g.climb(cur)
	if !ok {
		return nil, cur, false
	}
	return e, next, true
}

// unaryChain is a chain whose first operand is a unary expression.
func (g *grammar) unaryChain(cur pc.Cursor) (estree.Expression, pc.Cursor, bool) {
	first, at, ok := g.unary(cur)
	if !ok {
		return nil, cur, false
	}
	e, next, _, ok := g.climbFrom(first, at)
	if !ok {
		return nil, cur, false
	}
	return e, next, true
}
