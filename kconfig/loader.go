// Copyright © 2026 The kconf authors

package kconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Loader abstracts file access for the source resolver.  Errors propagate as
// fatal load errors.
type Loader interface {
	LoadFile(path string) ([]byte, error)
}

// FileSystemLoader reads included files from the operating system.
type FileSystemLoader struct{}

func (FileSystemLoader) LoadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Resolver expands source directives by loading and parsing referenced files
// and splicing their entries in place of the directive.  Splicing preserves
// the surrounding menu/if context, so an included file's symbols inherit any
// enclosing guard when the table is built.  A stack of open files guards
// against inclusion cycles; a repeated file is a fatal error naming the full
// chain.
type Resolver struct {
	reader  Reader
	loader  Loader
	srctree string
	logger  zerolog.Logger
	tracer  Tracer
	stack   []string
	open    map[string]bool
}

// NewResolver returns a Resolver loading includes relative to srctree.
func NewResolver(reader Reader, loader Loader, srctree string) *Resolver {
	return &Resolver{
		reader:  reader,
		loader:  loader,
		srctree: srctree,
		logger:  zerolog.Nop(),
		open:    make(map[string]bool),
	}
}

// SetLogger installs a logger for debug output during resolution.
func (r *Resolver) SetLogger(logger zerolog.Logger) {
	r.logger = logger
}

// SetTracer installs an operation tracer.
func (r *Resolver) SetTracer(tracer Tracer) {
	r.tracer = tracer
}

// Resolve loads, parses, and fully expands the Kconfig file at path.  The
// path is taken relative to the resolver's source tree unless absolute.
func (r *Resolver) Resolve(path string) (*File, error) {
	if r.tracer != nil {
		defer r.tracer.Begin("resolve", path)()
	}
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.srctree, abs)
	}
	abs = filepath.Clean(abs)

	if r.open[abs] {
		chain := append(append([]string{}, r.stack...), path)
		return nil, &SourceCycleError{Chain: chain}
	}
	r.stack = append(r.stack, path)
	r.open[abs] = true
	defer func() {
		r.stack = r.stack[:len(r.stack)-1]
		delete(r.open, abs)
	}()

	r.logger.Debug().Str("path", abs).Int("depth", len(r.stack)).Msg("sourcing kconfig file")

	text, err := r.loader.LoadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file, err := r.reader.Read(path, bytes.NewReader(text))
	if err != nil {
		return nil, err
	}
	file.Entries, err = r.expand(file.Entries)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (r *Resolver) expand(entries []Entry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		switch e := e.(type) {
		case *Source:
			included, err := r.Resolve(e.Path)
			if err != nil {
				return nil, err
			}
			out = append(out, included.Entries...)
		case *Menu:
			inner, err := r.expand(e.Entries)
			if err != nil {
				return nil, err
			}
			e.Entries = inner
			out = append(out, e)
		case *If:
			inner, err := r.expand(e.Entries)
			if err != nil {
				return nil, err
			}
			e.Entries = inner
			out = append(out, e)
		case *Choice:
			inner, err := r.expand(e.Entries)
			if err != nil {
				return nil, err
			}
			e.Entries = inner
			out = append(out, e)
		default:
			out = append(out, e)
		}
	}
	return out, nil
}

// Load resolves the root Kconfig file against srctree and builds the symbol
// table in one step.
func Load(reader Reader, srctree, root string) (*SymbolTable, error) {
	resolver := NewResolver(reader, FileSystemLoader{}, srctree)
	file, err := resolver.Resolve(root)
	if err != nil {
		return nil, err
	}
	return Build(file)
}
