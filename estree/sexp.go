package estree

import (
	"fmt"
	"strings"
)

// Sexp renders n as a compact S-expression. It is meant for tests and
// debugging output, not as a code generator.
func Sexp(n Node) string {
	var b strings.Builder
	writeSexp(&b, n)
	return b.String()
}

func writeSexp(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("nil")
	case *Program:
		b.WriteString("(program")
		for _, s := range n.Body {
			b.WriteByte(' ')
			writeSexp(b, s)
		}
		b.WriteByte(')')
	case *Comment:
		fmt.Fprintf(b, "(comment %q)", n.Value)
	case *Identifier:
		b.WriteString(n.Name)
	case *Literal:
		b.WriteString(n.Raw)
	case *BinaryExpression:
		list(b, n.Operator, n.Left, n.Right)
	case *LogicalExpression:
		list(b, n.Operator, n.Left, n.Right)
	case *UnaryExpression:
		list(b, n.Operator, n.Argument)
	case *ConditionalExpression:
		list(b, "?:", n.Test, n.Consequent, n.Alternate)
	case *CallExpression:
		b.WriteString("(call ")
		writeSexp(b, n.Callee)
		for _, a := range n.Arguments {
			b.WriteByte(' ')
			writeSexp(b, a)
		}
		b.WriteByte(')')
	case *MemberExpression:
		if n.Computed {
			list(b, "[]", n.Object, n.Property)
		} else {
			list(b, ".", n.Object, n.Property)
		}
	case *ArrayExpression:
		b.WriteByte('[')
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexp(b, e)
		}
		b.WriteByte(']')
	case *ObjectExpression:
		b.WriteByte('{')
		for i, p := range n.Properties {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexp(b, p)
		}
		b.WriteByte('}')
	case *Property:
		writeSexp(b, n.Key)
		b.WriteString(": ")
		writeSexp(b, n.Value)
	case *ArrowFunctionExpression:
		b.WriteString("(=> (")
		for i, p := range n.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexp(b, p)
		}
		b.WriteString(") ")
		writeSexp(b, n.Body)
		b.WriteByte(')')
	case *ArrayPattern:
		b.WriteByte('[')
		for i, e := range n.Elements {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeSexp(b, e)
		}
		b.WriteByte(']')
	case *VariableDeclaration:
		for i, d := range n.Declarations {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("(" + n.Kind + " ")
			writeSexp(b, d.ID)
			b.WriteByte(' ')
			writeSexp(b, d.Init)
			b.WriteByte(')')
		}
	case *VariableDeclarator:
		list(b, "decl", n.ID, n.Init)
	case *BlockStatement:
		b.WriteString("(block")
		for _, s := range n.Body {
			b.WriteByte(' ')
			writeSexp(b, s)
		}
		b.WriteByte(')')
	case *ReturnStatement:
		if n.Argument == nil {
			b.WriteString("(return)")
			return
		}
		list(b, "return", n.Argument)
	case *ExpressionStatement:
		writeSexp(b, n.Expression)
	case *IfStatement:
		if n.Alternate == nil {
			list(b, "if", n.Test, n.Consequent)
			return
		}
		list(b, "if", n.Test, n.Consequent, n.Alternate)
	case *SwitchStatement:
		b.WriteString("(switch ")
		writeSexp(b, n.Discriminant)
		for _, c := range n.Cases {
			b.WriteByte(' ')
			writeSexp(b, c)
		}
		b.WriteByte(')')
	case *SwitchCase:
		if n.Test == nil {
			b.WriteString("(default")
		} else {
			b.WriteString("(case ")
			writeSexp(b, n.Test)
		}
		for _, s := range n.Consequent {
			b.WriteByte(' ')
			writeSexp(b, s)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("estree: unhandled node %T", n))
	}
}

func list(b *strings.Builder, head string, items ...Node) {
	b.WriteString("(" + head)
	for _, it := range items {
		b.WriteByte(' ')
		writeSexp(b, it)
	}
	b.WriteByte(')')
}
