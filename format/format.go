// Package format writes programs in the output formats of the command line.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/lune/estree"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(prog *estree.Program) error
}

// Names lists the formats accepted by New.
func Names() []string {
	return []string{"json", "cbor", "sexp", "line"}
}

// New returns the encoder for the named format writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "cbor":
		return NewCBOREncoder(w), nil
	case "sexp":
		return NewSexpEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// write encodes prog with e and copies the text to w.
func write(w io.Writer, e Encoder) error {
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
