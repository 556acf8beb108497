package grammar

import (
	"testing"

	pc "github.com/dhamidi/lune/combinator"
	"github.com/dhamidi/lune/estree"
)

func runParser(p exprParser, src string) (estree.Expression, pc.Cursor, bool, *pc.Diagnostics) {
	return pc.Run(p, src, 1, 0)
}

func parseExpr(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	e, err := ParseExpression(Source{Text: src}, opts...)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	return estree.Sexp(e)
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 3 * 4", "(+ 2 (* 3 4))"},
		{"2 * 3 + 4", "(+ (* 2 3) 4)"},
		{"2 - 3 - 4", "(- (- 2 3) 4)"},
		{"8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"x % 2", "(% x 2)"},
		{"2 ^ 3 ^ 2", "(call (. Math pow) 2 (call (. Math pow) 3 2))"},
		{"a == b", "(=== a b)"},
		{"a !== b", "(!== a b)"},
		{"a <= b + 1", "(<= a (+ b 1))"},
		{"a && b || c", "(&& a (|| b c))"},
		{"a > 0 && b < 0", "(&& (> a 0) (< b 0))"},
		{"(2 + 3) * 4", "(* (+ 2 3) 4)"},
		{"f . g", "(=> ($0) (call f (call g $0)))"},
		{"f . g . h", "(=> ($0) (call f (call (=> ($0) (call g (call h $0))) $0)))"},
		{"1 +\n  2", "(+ 1 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseExpr(t, tt.input); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLogicalOperatorsBuildLogicalNodes(t *testing.T) {
	e, err := ParseExpression(Source{Text: "a && b"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := e.(*estree.LogicalExpression); !ok {
		t.Errorf("got %T, want *estree.LogicalExpression", e)
	}
}

func TestBinaryNeedsAnOperator(t *testing.T) {
	g := newGrammar(newConfig(nil))
	if _, _, ok, _ := runParser(g.binary, "42"); ok {
		t.Errorf("binary accepted a lone operand")
	}
	if _, _, ok, _ := runParser(g.chain, "42"); !ok {
		t.Errorf("chain rejected a lone operand")
	}
}

func TestDanglingOperatorFails(t *testing.T) {
	if _, err := ParseExpression(Source{Text: "1 +"}); err == nil {
		t.Errorf("expected an error for a dangling operator")
	}
}

func TestOperatorBlocking(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a -- comment", "a"},
		{"f a.b", "(call f (. a b))"},
		{"a == b", "(=== a b)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseExpr(t, tt.input); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
	if _, err := ParseExpression(Source{Text: "a === b"}); err == nil {
		t.Errorf("'===' parsed as an operator")
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", "42", "42"},
		{"decimal", "3.14", "3.14"},
		{"string", `"hi"`, `"hi"`},
		{"single quoted", `'hi'`, `'hi'`},
		{"bool", "true", "true"},
		{"null", "null", "null"},
		{"regex", "/ab+/g", "/ab+/g"},
		{"call", "f x y", "(call f x y)"},
		{"unit call", "f ()", "(call f)"},
		{"nested call", "f (g x) 1", "(call f (call g x) 1)"},
		{"call in chain", "f x - 1", "(- (call f x) 1)"},
		{"member", "a.b.c", "(. (. a b) c)"},
		{"keyword property", "a.then", "(. a then)"},
		{"index", "xs[0]", "([] xs 0)"},
		{"member call", "console.log x", "(call (. console log) x)"},
		{"io call", `readFile "a.txt"`, `(call (. IO readFile) "a.txt")`},
		{"bare io call", "readLine", "(call (. IO readLine))"},
		{"io method", `h.write "x"`, `(call (. h write) "x")`},
		{"negate", "-x", "(- x)"},
		{"negate in chain", "-x + 1", "(+ (- x) 1)"},
		{"not", "!a", "(! a)"},
		{"double not", "!!a", "(! (! a))"},
		{"typeof", "typeof f x", "(typeof (call f x))"},
		{"array", "[1, 2, 3]", "[1 2 3]"},
		{"empty array", "[]", "[]"},
		{"array trailing comma", "[1, 2,]", "[1 2]"},
		{"multiline array", "[\n  1,\n  2\n]", "[1 2]"},
		{"object", `{a: 1, "b": 2}`, `{a: 1 "b": 2}`},
		{"empty object", "{}", "{}"},
		{"lambda", `\x y -> x + y`, "(=> (x y) (+ x y))"},
		{"lambda without params", `\ -> 1`, "(=> () 1)"},
		{"let", "let a = 1, b = 2 in a + b", "(call (=> () (block (const a 1) (const b 2) (return (+ a b)))))"},
		{"if", "if a then b else c", "(?: a b c)"},
		{"multiline if", "if a\n  then b\n  else c", "(?: a b c)"},
		{"nested if", "if a then 1 else if b then 2 else 3", "(?: a 1 (?: b 2 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseExpr(t, tt.input); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNumberKeepsRaw(t *testing.T) {
	e, err := ParseExpression(Source{Text: "1.50"})
	if err != nil {
		t.Fatal(err)
	}
	lit := e.(*estree.Literal)
	if lit.Raw != "1.50" {
		t.Errorf("Raw = %q, want %q", lit.Raw, "1.50")
	}
	if lit.Value != 1.5 {
		t.Errorf("Value = %v, want %v", lit.Value, 1.5)
	}
	if lit.SType != estree.TypeNumber {
		t.Errorf("SType = %q, want %q", lit.SType, estree.TypeNumber)
	}
}

func TestStringEscapes(t *testing.T) {
	e, err := ParseExpression(Source{Text: `"a\nb\"c"`})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e.(*estree.Literal).Value, "a\nb\"c"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithOperators(t *testing.T) {
	ops := []Operator{
		{Symbol: "<>", Precedence: 5, Assoc: Left, Emit: "+"},
		{Symbol: "**", Precedence: 8, Assoc: Right, Emit: "**"},
	}
	got := parseExpr(t, "a <> b ** c ** d", WithOperators(ops))
	if want := "(+ a (** b (** c d)))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := ParseExpression(Source{Text: "a + b"}, WithOperators(ops)); err == nil {
		t.Errorf("'+' accepted with a table that does not define it")
	}
}

func TestOperatorTableOrder(t *testing.T) {
	table := newOperatorTable(DefaultOperators())
	seen := map[int]bool{}
	prev := 100
	for _, op := range table.order {
		if len(op.Symbol) > prev {
			t.Errorf("%q comes after a shorter symbol", op.Symbol)
		}
		prev = len(op.Symbol)
		seen[len(op.Symbol)] = true
	}
	if !seen[3] || !seen[1] {
		t.Errorf("order = %v, want every symbol", table.order)
	}
	if _, ok := table.lookup("&&"); !ok {
		t.Errorf("lookup(&&) failed")
	}
}
