package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/lune/estree"
)

// LineEncoder writes a tab-separated outline of the program, one line per
// top-level statement.
type LineEncoder struct {
	w    io.Writer
	prog *estree.Program
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(prog *estree.Program) error {
	e.prog = prog
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, st := range e.prog.Body {
		if name, init, ok := estree.DeclName(st); ok {
			fmt.Fprintf(&sb, "const\t%s\t%s\t%s\n", name, e.valueKind(init), e.paramsStr(init))
			continue
		}
		switch st := st.(type) {
		case *estree.ExpressionStatement:
			fmt.Fprintf(&sb, "expr\t%s\n", st.Expression.Type())
		default:
			fmt.Fprintf(&sb, "stmt\t%s\n", st.Type())
		}
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) valueKind(init estree.Expression) string {
	fn, ok := init.(*estree.ArrowFunctionExpression)
	if !ok {
		return "value"
	}
	if b, ok := fn.Body.(*estree.BlockStatement); ok && len(b.Body) == 1 {
		if _, ok := b.Body[0].(*estree.SwitchStatement); ok {
			return "dispatch"
		}
	}
	return "function"
}

func (e *LineEncoder) paramsStr(init estree.Expression) string {
	fn, ok := init.(*estree.ArrowFunctionExpression)
	if !ok || len(fn.Params) == 0 {
		return "-"
	}
	names := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		names[i] = estree.Sexp(p)
	}
	return strings.Join(names, ",")
}
