package format

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/dhamidi/lune/estree"
)

// CBOREncoder writes the ESTree tree as CBOR. The value is the decoded JSON
// form, so both encodings carry the same maps and key names.
type CBOREncoder struct {
	w    io.Writer
	prog *estree.Program
}

func NewCBOREncoder(w io.Writer) *CBOREncoder {
	return &CBOREncoder{w: w}
}

func (e *CBOREncoder) Encode(prog *estree.Program) error {
	e.prog = prog
	return write(e.w, e)
}

var cborMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

func (e *CBOREncoder) MarshalText() ([]byte, error) {
	text, err := json.Marshal(e.prog)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return cborMode.Marshal(numbers(tree))
}

// numbers replaces json.Number leaves with int64 or float64 values.
func numbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, x := range v {
			v[k] = numbers(x)
		}
		return v
	case []any:
		for i, x := range v {
			v[i] = numbers(x)
		}
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		f, _ := v.Float64()
		return f
	default:
		return v
	}
}

var cborDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{DefaultMapType: reflect.TypeOf(map[string]any(nil))}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// DecodeCBOR reads a tree written by CBOREncoder back into its generic form.
func DecodeCBOR(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := cborDecMode.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
