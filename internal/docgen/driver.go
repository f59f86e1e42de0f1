package docgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Driver runs the extraction pipeline over a list of source files and
// concatenates their documents in input order.
type Driver struct {
	parsers map[string]Parser
	asm     *Assembler

	// KeepGoing isolates per-file failures: failing files emit no document
	// but the run continues and the combined error is returned alongside
	// the successful output.
	KeepGoing bool
	// Parallel processes files concurrently; output order still matches
	// input order.
	Parallel bool
	// Debugf, when set, receives diagnostics. It must never write to the
	// document output stream.
	Debugf func(format string, args ...any)
}

// NewDriver returns a Driver with no parsers registered.
func NewDriver(ex *Extractor) *Driver {
	return &Driver{
		parsers: map[string]Parser{},
		asm:     NewAssembler(ex),
	}
}

// Register associates a parser with a file extension such as ".py". The
// extension match is case-insensitive.
func (dr *Driver) Register(ext string, p Parser) {
	dr.parsers[strings.ToLower(ext)] = p
}

// GenerateFile reads, parses and renders one source file.
func (dr *Driver) GenerateFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := dr.parsers[ext]
	if !ok {
		return "", fmt.Errorf("%s: no parser registered for %q files", path, ext)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := p.Parse(path, src)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	filtered := &Tree{Docstring: tree.Docstring}
	for _, d := range tree.Statements {
		if d.Kind == KindFunction || d.Kind == KindClass {
			filtered.Statements = append(filtered.Statements, d)
		}
	}
	dr.debugf("%s: %d of %d top-level statements are declarations", path, len(filtered.Statements), len(tree.Statements))
	dr.debugNormalized(path, "module", tree.Docstring)
	for _, d := range filtered.Statements {
		dr.debugNormalized(path, d.Name, d.Docstring)
		for _, m := range d.Children {
			dr.debugNormalized(path, d.Name+"."+m.Name, m.Docstring)
		}
	}

	return dr.asm.Assemble(path, filtered).Markdown(), nil
}

// Generate processes every path in input order and joins the per-file
// documents with a blank line. Without KeepGoing the first failure aborts
// the run and no output is returned.
func (dr *Driver) Generate(ctx context.Context, paths []string) (string, error) {
	docs := make([]string, len(paths))
	errs := make([]error, len(paths))

	if dr.Parallel {
		g, ctx := errgroup.WithContext(ctx)
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				doc, err := dr.GenerateFile(path)
				if err != nil {
					if dr.KeepGoing {
						errs[i] = err
						return nil
					}
					return err
				}
				docs[i] = doc
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
	} else {
		for i, path := range paths {
			doc, err := dr.GenerateFile(path)
			if err != nil {
				if dr.KeepGoing {
					dr.debugf("skipping %s: %v", path, err)
					errs[i] = err
					continue
				}
				return "", err
			}
			docs[i] = doc
		}
	}

	var out []string
	for _, d := range docs {
		if d != "" {
			out = append(out, d)
		}
	}
	return strings.Join(out, "\n"), errors.Join(errs...)
}

func (dr *Driver) debugf(format string, args ...any) {
	if dr.Debugf != nil {
		dr.Debugf(format, args...)
	}
}

// debugNormalized echoes the normalized form of a docstring so heading
// rewrites can be inspected without touching the document output.
func (dr *Driver) debugNormalized(path, name, doc string) {
	if dr.Debugf == nil || doc == "" {
		return
	}
	dr.Debugf("%s: %s docstring normalized:\n%s", path, name, NormalizeDocstring(doc))
}
