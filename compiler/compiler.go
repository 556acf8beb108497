// Package compiler drives parsing for the command line and the language
// server: it loads files, caches compiled documents, and logs what it does.
package compiler

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/lune/estree"
	"github.com/dhamidi/lune/grammar"
)

// Extension is the file extension of lune sources.
const Extension = ".ln"

const defaultCacheSize = 128

type Option func(*Compiler)

func WithFs(fs afero.Fs) Option {
	return func(c *Compiler) {
		c.fs = fs
	}
}

// WithCacheSize sets how many compiled documents are kept. Zero disables
// the cache.
func WithCacheSize(n int) Option {
	return func(c *Compiler) {
		c.cacheSize = n
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// WithParseOptions passes opts to every parse.
func WithParseOptions(opts ...grammar.Option) Option {
	return func(c *Compiler) {
		c.parseOpts = append(c.parseOpts, opts...)
	}
}

// WithValidation checks every compiled tree against the ESTree schema.
func WithValidation() Option {
	return func(c *Compiler) {
		c.validate = true
	}
}

// Compiler is safe for concurrent use. Compiled programs may be shared
// between callers through the cache and must not be modified.
type Compiler struct {
	fs        afero.Fs
	cacheSize int
	cache     *lru.Cache
	log       commonlog.Logger
	parseOpts []grammar.Option
	validate  bool
}

func New(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		fs:        afero.NewOsFs(),
		cacheSize: defaultCacheSize,
		log:       commonlog.GetLogger("lune.compiler"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 {
		cache, err := lru.New(c.cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create cache")
		}
		c.cache = cache
	}
	return c, nil
}

func (c *Compiler) Fs() afero.Fs {
	return c.fs
}

type entry struct {
	prog *estree.Program
	err  error
}

func cacheKey(path string, src grammar.Source) string {
	h := sha256.New()
	var pos [16]byte
	binary.BigEndian.PutUint64(pos[:8], uint64(src.Line))
	binary.BigEndian.PutUint64(pos[8:], uint64(src.Column))
	h.Write(pos[:])
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte(src.Text))
	return hex.EncodeToString(h.Sum(nil))
}

// CompileSource parses src. path only names the source in errors and may
// be empty. A syntax error is returned as a *grammar.ParseError.
func (c *Compiler) CompileSource(path string, src grammar.Source) (*estree.Program, error) {
	key := cacheKey(path, src)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			c.log.Debugf("cache hit for %q", path)
			e := v.(entry)
			return e.prog, e.err
		}
	}

	opts := c.parseOpts
	if path != "" {
		opts = append(append([]grammar.Option{}, opts...), grammar.WithFile(path))
	}
	prog, err := grammar.Parse(src, opts...)
	if err == nil && c.validate {
		if verr := estree.Validate(prog); verr != nil {
			prog, err = nil, errors.Wrapf(verr, "validate %s", path)
		}
	}
	if err != nil {
		c.log.Infof("compile %q: %s", path, err)
	} else {
		c.log.Debugf("compiled %q: %d statements", path, len(prog.Body))
	}

	if c.cache != nil {
		c.cache.Add(key, entry{prog: prog, err: err})
	}
	return prog, err
}

// CompileFile reads path from the compiler's filesystem and compiles it.
func (c *Compiler) CompileFile(path string) (*estree.Program, error) {
	text, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return c.CompileSource(path, grammar.Source{Text: string(text), Line: 1})
}

// Purge drops every cached document.
func (c *Compiler) Purge() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Cached reports how many documents are in the cache.
func (c *Compiler) Cached() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
