package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceScanAll(t *testing.T) {
	c := newTestCompiler(t, map[string]string{
		"/proj/main.ln":     "main = log (greet \"you\")\n",
		"/proj/lib/util.ln": "greet name = \"hi \" + name\nsquare x = x * x\n",
		"/proj/broken.ln":   "x = [1, 2\n",
		"/proj/README.md":   "not a source\n",
	})
	w := NewWorkspace("/proj", c)
	require.NoError(t, w.ScanAll())

	files := w.Files()
	require.Len(t, files, 3)
	assert.Equal(t, "/proj/broken.ln", files[0].Path)
	assert.NotNil(t, files[0].ParseError())
	assert.Nil(t, files[1].ParseError())

	assert.Equal(t, []string{"greet", "main", "square"}, w.Declarations())
}

func TestWorkspaceUpdateFile(t *testing.T) {
	w := NewWorkspace("/", newTestCompiler(t, nil))

	f := w.UpdateFile("/a.ln", []byte("x = (1\n"))
	require.NotNil(t, f.ParseError())
	assert.Nil(t, f.Program)

	f = w.UpdateFile("/a.ln", []byte("x = (1)\n"))
	assert.Nil(t, f.ParseError())
	assert.Same(t, f, w.GetFile("/a.ln"))
	assert.Equal(t, []string{"x"}, w.Declarations())

	w.RemoveFile("/a.ln")
	assert.Nil(t, w.GetFile("/a.ln"))
	assert.Empty(t, w.Declarations())
}
