package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/lune/estree"
)

// JSONEncoder writes the ESTree JSON form of a program.
type JSONEncoder struct {
	w      io.Writer
	prog   *estree.Program
	indent string
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, indent: "  "}
}

// Compact drops indentation from the output.
func (e *JSONEncoder) Compact() *JSONEncoder {
	e.indent = ""
	return e
}

func (e *JSONEncoder) Encode(prog *estree.Program) error {
	e.prog = prog
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var (
		text []byte
		err  error
	)
	if e.indent == "" {
		text, err = json.Marshal(e.prog)
	} else {
		text, err = json.MarshalIndent(e.prog, "", e.indent)
	}
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
