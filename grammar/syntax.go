package grammar

import (
	_ "embed"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed syntax.ebnf
var syntax string

// SyntaxStart is the production every other one is reachable from.
const SyntaxStart = "Program"

// Syntax returns the EBNF description of the language. Lower-case
// productions are lexical.
func Syntax() string {
	return syntax
}

func parseSyntax() (ebnf.Grammar, error) {
	return ebnf.Parse("syntax.ebnf", strings.NewReader(syntax))
}

// VerifySyntax checks that the description is well formed, and that every
// production it uses is defined and reachable from SyntaxStart.
func VerifySyntax() error {
	g, err := parseSyntax()
	if err != nil {
		return err
	}
	return ebnf.Verify(g, SyntaxStart)
}

// Productions returns the production names of the description, sorted.
func Productions() ([]string, error) {
	g, err := parseSyntax()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
