package estree

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, n any) map[string]any {
	t.Helper()
	data, err := json.Marshal(n)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestLiteralJSON(t *testing.T) {
	tests := []struct {
		name string
		lit  *Literal
		want map[string]any
	}{
		{"number", NumberLiteral("25"), map[string]any{
			"type": "Literal", "value": 25.0, "raw": "25", "sType": "Number",
		}},
		{"decimal keeps raw", NumberLiteral("1.50"), map[string]any{
			"type": "Literal", "value": 1.5, "raw": "1.50", "sType": "Number",
		}},
		{"string", StringLiteral("hi"), map[string]any{
			"type": "Literal", "value": "hi", "raw": `"hi"`, "sType": "String",
		}},
		{"bool", BoolLiteral(false), map[string]any{
			"type": "Literal", "value": false, "raw": "false", "sType": "Boolean",
		}},
		{"null", NullLiteral(), map[string]any{
			"type": "Literal", "value": nil, "raw": "null", "sType": "Null",
		}},
		{"regexp", RegExpLiteral("a+", "g"), map[string]any{
			"type": "Literal", "value": nil, "raw": "/a+/g", "sType": "RegExp",
			"regex": map[string]any{"pattern": "a+", "flags": "g"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(t, tt.lit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("literal JSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNodeTypeTags(t *testing.T) {
	prog := NewProgram([]Statement{
		Const("f", Arrow(Params("x"), Binary("+", Ident("x"), NumberLiteral("1")))),
	})
	got := decode(t, prog)
	assert.Equal(t, "Program", got["type"])
	assert.Equal(t, "module", got["sourceType"])

	decl := got["body"].([]any)[0].(map[string]any)
	assert.Equal(t, "VariableDeclaration", decl["type"])
	assert.Equal(t, "const", decl["kind"])

	init := decl["declarations"].([]any)[0].(map[string]any)["init"].(map[string]any)
	assert.Equal(t, "ArrowFunctionExpression", init["type"])
	assert.Equal(t, true, init["expression"])
	assert.Equal(t, "BinaryExpression", init["body"].(map[string]any)["type"])
}

func TestCommentJSON(t *testing.T) {
	got := decode(t, LineComment(" note"))
	want := map[string]any{"type": "Line", "value": " note"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("comment JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyCollectionsMarshalAsArrays(t *testing.T) {
	got := decode(t, NewProgram(nil))
	assert.Equal(t, []any{}, got["body"])

	arrow := decode(t, Arrow(nil, Array()))
	assert.Equal(t, []any{}, arrow["params"])
	assert.Equal(t, []any{}, arrow["body"].(map[string]any)["elements"])
}

func TestSexp(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"declaration",
			Const("a", Binary("+", NumberLiteral("2"), Binary("*", NumberLiteral("3"), NumberLiteral("4")))),
			"(const a (+ 2 (* 3 4)))",
		},
		{"arrow", Arrow(Params("x"), Ident("x")), "(=> (x) x)"},
		{"method call", MethodCall(Ident("a"), "bind", Ident("f")), "(call (. a bind) f)"},
		{"index", Index(Ident("xs"), NumberLiteral("0")), "([] xs 0)"},
		{"path", Path("Object.defineProperty"), "(. Object defineProperty)"},
		{"iife", IIFE([]Statement{Return(NumberLiteral("1"))}), "(call (=> () (block (return 1))))"},
		{"array pattern", Arrow([]Pattern{ArrayPat("a", "b")}, Array(Ident("a"), Ident("b"))), "(=> ([a b]) [a b])"},
		{"if without else", If(Ident("t"), Block(ExprStmt(Call(Ident("f")))), nil), "(if t (block (call f)))"},
		{
			"switch",
			Switch(Ident("n"), Case(NumberLiteral("0"), Return(NumberLiteral("1"))), Case(nil, Return(Ident("n")))),
			"(switch n (case 0 (return 1)) (default (return n)))",
		},
		{"object", Object(Prop(Ident("k"), StringLiteral("v"))), `{k: "v"}`},
		{"conditional", Conditional(Ident("a"), Ident("b"), Ident("c")), "(?: a b c)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sexp(tt.node); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestArrowReturning(t *testing.T) {
	e := ArrowReturning(Params("x"), nil, Ident("x"))
	assert.True(t, e.Expression)

	b := ArrowReturning(Params("x"), []Statement{ExprStmt(Call(Ident("log"), Ident("x")))}, Ident("x"))
	assert.Equal(t, "(=> (x) (block (call log x) (return x)))", Sexp(b))
}

func TestDeclName(t *testing.T) {
	name, init, ok := DeclName(Const("x", NumberLiteral("1")))
	require.True(t, ok)
	assert.Equal(t, "x", name)
	assert.Equal(t, "1", Sexp(init))

	_, _, ok = DeclName(ExprStmt(Ident("x")))
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	t.Run("accepts merged program", func(t *testing.T) {
		prog := NewProgram([]Statement{
			Const("fib", ArrowBlock(Params("n"), []Statement{
				Switch(Ident("n"),
					Case(NumberLiteral("0"), Return(NumberLiteral("0"))),
					Case(nil, Return(Ident("n"))),
				),
			})),
			ExprStmt(Call(Path("IO.putLine"), StringLiteral("done"))),
		})
		assert.NoError(t, Validate(prog))
	})

	t.Run("rejects literal parameter", func(t *testing.T) {
		fn := &ArrowFunctionExpression{Params: []Pattern{NumberLiteral("0")}, Body: NumberLiteral("1"), Expression: true}
		prog := NewProgram([]Statement{Const("f", fn)})
		assert.Error(t, Validate(prog))
	})
}
