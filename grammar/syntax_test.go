package grammar

import (
	"strings"
	"testing"
)

func TestSyntaxVerifies(t *testing.T) {
	if err := VerifySyntax(); err != nil {
		t.Fatalf("VerifySyntax: %v", err)
	}
}

func TestSyntaxCoversKeywords(t *testing.T) {
	text := Syntax()
	for _, kw := range Keywords() {
		if !strings.Contains(text, `"`+kw+`"`) {
			t.Errorf("keyword %q missing from the syntax", kw)
		}
	}
	for name := range ioFunctions {
		if !strings.Contains(text, `"`+name+`"`) {
			t.Errorf("I/O function %q missing from the syntax", name)
		}
	}
}

func TestSyntaxCoversOperators(t *testing.T) {
	text := Syntax()
	for _, op := range DefaultOperators() {
		if !strings.Contains(text, `"`+op.Symbol+`"`) {
			t.Errorf("operator %q missing from the syntax", op.Symbol)
		}
	}
}

func TestProductions(t *testing.T) {
	names, err := Productions()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"Program": false, "DoBlock": false, "identifier": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, found := range want {
		if !found {
			t.Errorf("production %s missing", n)
		}
	}
}
