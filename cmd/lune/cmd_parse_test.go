package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runParse(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newParseCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseExpr(t *testing.T) {
	out, err := runParse(t, "", "--expr", "2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "(+ 2 (* 3 4))\n", out)
}

func TestParseStdinSexp(t *testing.T) {
	out, err := runParse(t, "sq x = x * x\n", "-f", "sexp", "-")
	require.NoError(t, err)
	assert.Equal(t, "(const sq (=> (x) (* x x)))\n", out)
}

func TestParseFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.ln")
	require.NoError(t, os.WriteFile(path, []byte("a = 25\n"), 0o644))

	out, err := runParse(t, "", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "Program"`)
	assert.Contains(t, out, `"raw": "25"`)
}

func TestParseErrorJSON(t *testing.T) {
	out, err := runParse(t, "x = (1\n", "-")
	require.Error(t, err)
	assert.Contains(t, out, `"error":true`)
	assert.Contains(t, out, `"msg":"unclosed '('"`)
}

func TestParseUnknownFormat(t *testing.T) {
	_, err := runParse(t, "x = 1\n", "-f", "yaml", "-")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.ln"), []byte("a = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.ln"), []byte("b = [1\n"), 0o644))

	cmd := newCheckCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files have errors")
	assert.Contains(t, out.String(), "bad.ln:2:0: unclosed '['")
}
