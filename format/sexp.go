package format

import (
	"io"
	"strings"

	"github.com/dhamidi/lune/estree"
)

// SexpEncoder writes one S-expression per top-level statement.
type SexpEncoder struct {
	w    io.Writer
	prog *estree.Program
}

func NewSexpEncoder(w io.Writer) *SexpEncoder {
	return &SexpEncoder{w: w}
}

func (e *SexpEncoder) Encode(prog *estree.Program) error {
	e.prog = prog
	return write(e.w, e)
}

func (e *SexpEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, st := range e.prog.Body {
		sb.WriteString(estree.Sexp(st))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
