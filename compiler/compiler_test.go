package compiler

import (
	"errors"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/lune/estree"
	"github.com/dhamidi/lune/grammar"
)

func newTestCompiler(t *testing.T, files map[string]string, opts ...Option) *Compiler {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, text := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(text), 0o644))
	}
	c, err := New(append([]Option{WithFs(fs)}, opts...)...)
	require.NoError(t, err)
	return c
}

func TestCompileFile(t *testing.T) {
	c := newTestCompiler(t, map[string]string{
		"/src/main.ln": "a = 25\nmain = log a\n",
	})

	prog, err := c.CompileFile("/src/main.ln")
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	name, init, ok := estree.DeclName(prog.Body[0])
	require.True(t, ok)
	assert.Equal(t, "a", name)
	assert.Equal(t, "25", init.(*estree.Literal).Raw)
}

func TestCompileFileMissing(t *testing.T) {
	c := newTestCompiler(t, nil)

	_, err := c.CompileFile("/src/missing.ln")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read /src/missing.ln")
}

func TestCompileFileSyntaxError(t *testing.T) {
	c := newTestCompiler(t, map[string]string{
		"/src/bad.ln": "a = if 1 then 2\n",
	})

	_, err := c.CompileFile("/src/bad.ln")
	var perr *grammar.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "/src/bad.ln", perr.File)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 0, perr.Column)
	assert.Equal(t, "if expression requires an 'else' branch", perr.Msg)
}

func TestCompileSourceCache(t *testing.T) {
	c := newTestCompiler(t, nil)
	src := grammar.Source{Text: "x = 1\n", Line: 1}

	first, err := c.CompileSource("a.ln", src)
	require.NoError(t, err)
	second, err := c.CompileSource("a.ln", src)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Cached())

	_, err = c.CompileSource("b.ln", src)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Cached())

	c.Purge()
	assert.Equal(t, 0, c.Cached())
}

func TestCompileSourceCacheEvicts(t *testing.T) {
	c := newTestCompiler(t, nil, WithCacheSize(1))

	for _, text := range []string{"x = 1\n", "x = 2\n", "x = 3\n"} {
		_, err := c.CompileSource("", grammar.Source{Text: text})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, c.Cached())
}

func TestCompileSourceNoCache(t *testing.T) {
	c := newTestCompiler(t, nil, WithCacheSize(0))
	src := grammar.Source{Text: "x = 1\n"}

	first, err := c.CompileSource("", src)
	require.NoError(t, err)
	second, err := c.CompileSource("", src)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 0, c.Cached())
}

func TestCompileSourceValidation(t *testing.T) {
	src := grammar.Source{Text: "fib 0 = 0\nfib n = n\n"}

	c := newTestCompiler(t, nil, WithValidation())
	_, err := c.CompileSource("", src)
	require.NoError(t, err)

	// Without merging the literal parameter stays, which ESTree rejects.
	c = newTestCompiler(t, nil, WithValidation(), WithParseOptions(grammar.WithoutClauseMerging()))
	_, err = c.CompileSource("", src)
	require.Error(t, err)
}

func TestCompileSourceConcurrent(t *testing.T) {
	c := newTestCompiler(t, nil)
	texts := []string{"a = 1\n", "b = 2 + 3\n", "c = do\n  x <- readLine\n  log x\n", "d = if\n"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := texts[i%len(texts)]
			_, err := c.CompileSource("", grammar.Source{Text: text})
			if text == "d = if\n" {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()
}
