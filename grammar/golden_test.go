package grammar

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/lune/estree"
)

var testFilter string

func init() {
	flag.StringVar(&testFilter, "filter", "", "filter testdata files by substring match on filename")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// TestGolden parses every testdata/*.ln file and compares the tree with the
// S-expression in the matching .sexp file.
// Use -filter to pick files: go test ./grammar -filter=fib
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.ln"))
	if err != nil {
		t.Fatalf("failed to list testdata: %v", err)
	}
	var selected []string
	for _, f := range files {
		if testFilter == "" || strings.Contains(f, testFilter) {
			selected = append(selected, f)
		}
	}
	if len(selected) == 0 {
		t.Skipf("no .ln files matching filter %q", testFilter)
	}

	for _, path := range selected {
		name := strings.TrimSuffix(filepath.Base(path), ".ln")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}
			want, err := os.ReadFile(strings.TrimSuffix(path, ".ln") + ".sexp")
			if err != nil {
				t.Fatalf("missing golden file for %s: %v", path, err)
			}
			prog, err := Parse(Source{Text: string(src)}, WithFile(path))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := estree.Validate(prog); err != nil {
				t.Errorf("validate: %v", err)
			}
			if got := estree.Sexp(prog); got != strings.TrimSpace(string(want)) {
				t.Errorf("got  %s\nwant %s", got, strings.TrimSpace(string(want)))
			}
		})
	}
}
