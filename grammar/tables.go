package grammar

import (
	"sort"

	"github.com/dhamidi/lune/estree"
)

var keywords = map[string]bool{
	"let":            true,
	"in":             true,
	"if":             true,
	"then":           true,
	"else":           true,
	"where":          true,
	"do":             true,
	"return":         true,
	"otherwise":      true,
	"typeof":         true,
	"delete":         true,
	"defineProp":     true,
	"maybeTrue":      true,
	"maybeFalse":     true,
	"maybeNull":      true,
	"maybeUndefined": true,
	"maybeErr":       true,
	"true":           true,
	"false":          true,
	"null":           true,
}

// ioNamespace is the runtime object the I/O functions live on.
const ioNamespace = "IO"

// I/O functions produce effects. They are called through ioNamespace.
var ioFunctions = map[string]bool{
	"readFile":   true,
	"writeFile":  true,
	"appendFile": true,
	"readLine":   true,
	"log":        true,
	"print":      true,
	"getEnv":     true,
	"sleep":      true,
	"fetch":      true,
	"exit":       true,
}

// I/O methods produce effects when called on a handle.
var ioMethods = map[string]bool{
	"read":   true,
	"write":  true,
	"close":  true,
	"send":   true,
	"listen": true,
}

func isReserved(word string) bool {
	return keywords[word] || ioFunctions[word] || ioMethods[word]
}

// Keywords returns the language keywords in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Operator describes one binary operator. Emit is the operator written to
// the output tree. Rewrite, when set, builds the output node instead of the
// default binary node.
type Operator struct {
	Symbol     string
	Precedence int
	Assoc      Assoc
	Emit       string
	Logical    bool
	Rewrite    func(left, right estree.Expression) estree.Expression
}

func (op *Operator) build(left, right estree.Expression) estree.Expression {
	switch {
	case op.Rewrite != nil:
		return op.Rewrite(left, right)
	case op.Logical:
		return estree.Logical(op.Emit, left, right)
	default:
		return estree.Binary(op.Emit, left, right)
	}
}

// shiftsOver reports whether op is pushed on top of top rather than
// reducing top first.
func (op *Operator) shiftsOver(top *Operator) bool {
	if op.Precedence != top.Precedence {
		return op.Precedence > top.Precedence
	}
	return op.Assoc == Right
}

// sentinel sits at the bottom of the operator stack.
var sentinel = &Operator{Symbol: "", Precedence: -1}

// composeParam is the parameter of composed functions. Identifiers in source
// cannot contain '$', so it never captures a user name.
const composeParam = "$0"

func compose(left, right estree.Expression) estree.Expression {
	x := estree.Ident(composeParam)
	return estree.Arrow(estree.Params(composeParam), estree.Call(left, estree.Call(right, x)))
}

func power(left, right estree.Expression) estree.Expression {
	return estree.Call(estree.Path("Math.pow"), left, right)
}

// DefaultOperators is the operator table of the language, highest
// precedence first.
func DefaultOperators() []Operator {
	return []Operator{
		{Symbol: ".", Precedence: 9, Assoc: Right, Emit: ".", Rewrite: compose},
		{Symbol: "^", Precedence: 8, Assoc: Right, Emit: "**", Rewrite: power},
		{Symbol: "*", Precedence: 7, Assoc: Left, Emit: "*"},
		{Symbol: "/", Precedence: 7, Assoc: Left, Emit: "/"},
		{Symbol: "%", Precedence: 7, Assoc: Left, Emit: "%"},
		{Symbol: "+", Precedence: 6, Assoc: Left, Emit: "+"},
		{Symbol: "-", Precedence: 6, Assoc: Left, Emit: "-"},
		{Symbol: "==", Precedence: 4, Assoc: Left, Emit: "==="},
		{Symbol: "!==", Precedence: 4, Assoc: Left, Emit: "!=="},
		{Symbol: "<", Precedence: 4, Assoc: Left, Emit: "<"},
		{Symbol: "<=", Precedence: 4, Assoc: Left, Emit: "<="},
		{Symbol: ">=", Precedence: 4, Assoc: Left, Emit: ">="},
		{Symbol: ">", Precedence: 4, Assoc: Left, Emit: ">"},
		{Symbol: "&&", Precedence: 3, Assoc: Right, Emit: "&&", Logical: true},
		{Symbol: "||", Precedence: 3, Assoc: Right, Emit: "||", Logical: true},
	}
}

// operatorTable holds one descriptor per symbol, with symbols ordered
// longest first for matching.
type operatorTable struct {
	bySymbol map[string]*Operator
	order    []*Operator
}

func newOperatorTable(ops []Operator) *operatorTable {
	t := &operatorTable{bySymbol: make(map[string]*Operator)}
	for i := range ops {
		op := ops[i]
		t.bySymbol[op.Symbol] = &op
	}
	for _, op := range t.bySymbol {
		t.order = append(t.order, op)
	}
	sort.Slice(t.order, func(i, j int) bool {
		a, b := t.order[i].Symbol, t.order[j].Symbol
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return t
}

func (t *operatorTable) lookup(symbol string) (*Operator, bool) {
	op, ok := t.bySymbol[symbol]
	return op, ok
}
