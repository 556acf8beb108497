package estree

import (
	"strconv"
	"strings"
)

func NewProgram(body []Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return &Program{Body: body, SourceType: "module"}
}

func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func Idents(names []string) []Expression {
	out := make([]Expression, len(names))
	for i, n := range names {
		out[i] = Ident(n)
	}
	return out
}

// NumberLiteral keeps raw exactly as written so rendering recovers it.
func NumberLiteral(raw string) *Literal {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v = 0
	}
	return &Literal{Value: v, Raw: raw, SType: TypeNumber}
}

func StringLiteral(value string) *Literal {
	return &Literal{Value: value, Raw: strconv.Quote(value), SType: TypeString}
}

// RawStringLiteral is a string literal whose source form is raw.
func RawStringLiteral(value, raw string) *Literal {
	return &Literal{Value: value, Raw: raw, SType: TypeString}
}

func BoolLiteral(v bool) *Literal {
	return &Literal{Value: v, Raw: strconv.FormatBool(v), SType: TypeBoolean}
}

func NullLiteral() *Literal {
	return &Literal{Value: nil, Raw: "null", SType: TypeNull}
}

func RegExpLiteral(pattern, flags string) *Literal {
	return &Literal{
		Raw:   "/" + pattern + "/" + flags,
		Regex: &RegExp{Pattern: pattern, Flags: flags},
		SType: TypeRegExp,
	}
}

func Binary(op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Operator: op, Left: left, Right: right}
}

func Logical(op string, left, right Expression) *LogicalExpression {
	return &LogicalExpression{Operator: op, Left: left, Right: right}
}

func Unary(op string, arg Expression) *UnaryExpression {
	return &UnaryExpression{Operator: op, Prefix: true, Argument: arg}
}

func Conditional(test, consequent, alternate Expression) *ConditionalExpression {
	return &ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

func Call(callee Expression, args ...Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return &CallExpression{Callee: callee, Arguments: args}
}

// Member builds obj.name.
func Member(obj Expression, name string) *MemberExpression {
	return &MemberExpression{Object: obj, Property: Ident(name)}
}

// Index builds obj[prop].
func Index(obj, prop Expression) *MemberExpression {
	return &MemberExpression{Object: obj, Property: prop, Computed: true}
}

// MethodCall builds obj.name(args...).
func MethodCall(obj Expression, name string, args ...Expression) *CallExpression {
	return Call(Member(obj, name), args...)
}

// Path builds a dotted member chain such as Object.defineProperty.
func Path(dotted string) Expression {
	parts := strings.Split(dotted, ".")
	var e Expression = Ident(parts[0])
	for _, p := range parts[1:] {
		e = Member(e, p)
	}
	return e
}

func Array(elems ...Expression) *ArrayExpression {
	if elems == nil {
		elems = []Expression{}
	}
	return &ArrayExpression{Elements: elems}
}

func Object(props ...*Property) *ObjectExpression {
	if props == nil {
		props = []*Property{}
	}
	return &ObjectExpression{Properties: props}
}

func Prop(key, value Expression) *Property {
	return &Property{Key: key, Value: value, Kind: "init"}
}

// Arrow builds (params) => expr.
func Arrow(params []Pattern, body Expression) *ArrowFunctionExpression {
	if params == nil {
		params = []Pattern{}
	}
	return &ArrowFunctionExpression{Params: params, Body: body, Expression: true}
}

// ArrowBlock builds (params) => { body }.
func ArrowBlock(params []Pattern, body []Statement) *ArrowFunctionExpression {
	if params == nil {
		params = []Pattern{}
	}
	return &ArrowFunctionExpression{Params: params, Body: Block(body...)}
}

// ArrowReturning collapses to an expression body when stmts is empty.
func ArrowReturning(params []Pattern, stmts []Statement, result Expression) *ArrowFunctionExpression {
	if len(stmts) == 0 {
		return Arrow(params, result)
	}
	body := append(append([]Statement{}, stmts...), Return(result))
	return ArrowBlock(params, body)
}

// IIFE builds (() => { body })().
func IIFE(body []Statement) *CallExpression {
	return Call(ArrowBlock(nil, body))
}

func Params(names ...string) []Pattern {
	out := make([]Pattern, len(names))
	for i, n := range names {
		out[i] = Ident(n)
	}
	return out
}

func ArrayPat(names ...string) *ArrayPattern {
	return &ArrayPattern{Elements: Params(names...)}
}

func Const(name string, init Expression) *VariableDeclaration {
	return &VariableDeclaration{
		Kind:         "const",
		Declarations: []*VariableDeclarator{Declarator(name, init)},
	}
}

func Declarator(name string, init Expression) *VariableDeclarator {
	return &VariableDeclarator{ID: Ident(name), Init: init}
}

func Block(stmts ...Statement) *BlockStatement {
	if stmts == nil {
		stmts = []Statement{}
	}
	return &BlockStatement{Body: stmts}
}

func Return(arg Expression) *ReturnStatement {
	return &ReturnStatement{Argument: arg}
}

func ExprStmt(e Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: e}
}

func If(test Expression, consequent Statement, alternate Statement) *IfStatement {
	return &IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func Switch(discriminant Expression, cases ...*SwitchCase) *SwitchStatement {
	return &SwitchStatement{Discriminant: discriminant, Cases: cases}
}

func Case(test Expression, body ...Statement) *SwitchCase {
	if body == nil {
		body = []Statement{}
	}
	return &SwitchCase{Test: test, Consequent: body}
}

func LineComment(text string) *Comment {
	return &Comment{Kind: "Line", Value: text}
}

func BlockComment(text string) *Comment {
	return &Comment{Kind: "Block", Value: text}
}

// DeclName returns the declared name and initializer of a single-binding
// const declaration.
func DeclName(s Statement) (string, Expression, bool) {
	d, ok := s.(*VariableDeclaration)
	if !ok || len(d.Declarations) != 1 {
		return "", nil, false
	}
	id, ok := d.Declarations[0].ID.(*Identifier)
	if !ok {
		return "", nil, false
	}
	return id.Name, d.Declarations[0].Init, true
}
