package grammar

import (
	"testing"

	pc "github.com/dhamidi/lune/combinator"
)

func TestKeywordParsersAreShared(t *testing.T) {
	for _, kw := range Keywords() {
		if _, ok := keywordParsers[kw]; !ok {
			t.Errorf("no parser for keyword %q", kw)
		}
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = keyword("then")
	})
	if allocs != 0 {
		t.Errorf("keyword allocated %.0f times per call, want 0", allocs)
	}
}

func TestKeywordMatchesWholeWords(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"do", true},
		{"  do x", true},
		{"done", false},
		{"do_it", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, _, ok, _ := pc.Run(keyword("do"), tt.input, 1, 0); ok != tt.ok {
				t.Errorf("keyword(do) on %q = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}
