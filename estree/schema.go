package estree

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaText string

const schemaURL = "https://lune.dev/schema/estree.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(schemaURL, schemaText)
	})
	return compiledSchema, schemaErr
}

// Validate checks that the JSON form of p only uses the node shapes the
// external code generator accepts. Intermediate shapes, such as literal
// parameters left over from unmerged pattern clauses, are rejected.
func Validate(p *Program) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("compile estree schema: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal program: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode program: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("invalid estree: %w", err)
	}
	return nil
}
