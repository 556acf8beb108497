package compiler

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/dhamidi/lune/estree"
	"github.com/dhamidi/lune/grammar"
)

// Workspace holds the latest compiled state of every source under a root
// directory.
type Workspace struct {
	mu       sync.RWMutex
	rootDir  string
	compiler *Compiler
	files    map[string]*File
}

type File struct {
	Path    string
	Content []byte
	Program *estree.Program
	Err     error
}

// ParseError returns the file's syntax error, if it has one.
func (f *File) ParseError() *grammar.ParseError {
	var perr *grammar.ParseError
	if errors.As(f.Err, &perr) {
		return perr
	}
	return nil
}

func NewWorkspace(rootDir string, c *Compiler) *Workspace {
	return &Workspace{
		rootDir:  rootDir,
		compiler: c,
		files:    make(map[string]*File),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll compiles every source file below the root directory.
func (w *Workspace) ScanAll() error {
	return afero.Walk(w.compiler.Fs(), w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == Extension {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := afero.ReadFile(w.compiler.Fs(), path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile compiles content as the new text of path.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	prog, err := w.compiler.CompileSource(path, grammar.Source{Text: string(content), Line: 1})
	f := &File{Path: path, Content: content, Program: prog, Err: err}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the known files in path order.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Declarations returns the sorted, distinct names declared at the top
// level of every file that compiled.
func (w *Workspace) Declarations() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	seen := make(map[string]bool)
	var names []string
	for _, f := range w.files {
		if f.Program == nil {
			continue
		}
		for _, st := range f.Program.Body {
			if name, _, ok := estree.DeclName(st); ok && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
