package lsp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lune/compiler"
	"github.com/dhamidi/lune/grammar"
)

func TestDiagnosticsClean(t *testing.T) {
	diags := Diagnostics(&compiler.File{Path: "a.ln"})
	require.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestDiagnosticsParseError(t *testing.T) {
	f := &compiler.File{
		Path: "a.ln",
		Err:  &grammar.ParseError{Line: 3, Column: 4, Msg: "unclosed '('"},
	}
	diags := Diagnostics(f)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, "unclosed '('", d.Message)
	assert.Equal(t, protocol.Position{Line: 2, Character: 4}, d.Range.Start)
	assert.Equal(t, protocol.Position{Line: 2, Character: 5}, d.Range.End)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	require.NotNil(t, d.Source)
	assert.Equal(t, "lune", *d.Source)
}

func TestDiagnosticsOtherError(t *testing.T) {
	diags := Diagnostics(&compiler.File{Path: "a.ln", Err: errors.New("validate a.ln: bad tree")})
	require.Len(t, diags, 1)
	assert.Equal(t, "validate a.ln: bad tree", diags[0].Message)
	assert.Equal(t, protocol.Position{}, diags[0].Range.Start)
}

func TestDiagnosticsFromWorkspace(t *testing.T) {
	c, err := compiler.New(compiler.WithCacheSize(0))
	require.NoError(t, err)
	w := compiler.NewWorkspace("/", c)

	f := w.UpdateFile("/a.ln", []byte("x = 1\ny = [1, 2\n"))
	diags := Diagnostics(f)
	require.Len(t, diags, 1)
	assert.Equal(t, "unclosed '['", diags[0].Message)
}

func TestWordBefore(t *testing.T) {
	content := []byte("main = do\n  x <- readL\n  pri")
	tests := []struct {
		line, col int
		want      string
	}{
		{1, 4, "main"},
		{1, 2, "ma"},
		{2, 12, "readL"},
		{2, 3, "x"},
		{2, 4, ""},
		{3, 5, "pri"},
		{3, 99, "pri"},
		{9, 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, wordBefore(content, tt.line, tt.col), "line %d col %d", tt.line, tt.col)
	}
}

func TestCompletions(t *testing.T) {
	labels := func(items []protocol.CompletionItem) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.Label)
		}
		return out
	}

	assert.Equal(t, []string{"maybeErr", "maybeFalse", "maybeNull", "maybeTrue", "maybeUndefined", "main", "mapAll"},
		labels(Completions("ma", []string{"mapAll", "main", "other"})))
	assert.Equal(t, []string{"then", "true", "typeof"}, labels(Completions("t", nil)))
	assert.Empty(t, Completions("then", nil))
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/src/main.ln")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/src/main.ln", path)

	path, err = uriToPath("/plain/path.ln")
	require.NoError(t, err)
	assert.Equal(t, "/plain/path.ln", path)
}
