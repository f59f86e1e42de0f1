// Package goparser builds declaration trees from Go source. Top-level
// functions map to function declarations; struct types map to classes whose
// method list is the type's method set in source order. Doc comments serve
// as docstrings and embedded fields as bases.
package goparser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/docstub-labs/docstub/internal/docgen"
)

// Parser implements docgen.Parser for Go sources.
type Parser struct{}

// New returns a Go parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds the declaration tree for one Go file.
func (p *Parser) Parse(filename string, src []byte) (*docgen.Tree, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	out := &docgen.Tree{Docstring: docText(file.Doc)}
	classIndex := map[string]int{}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				continue // attached to its type below
			}
			out.Statements = append(out.Statements, function(d, fset))
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				out.Statements = append(out.Statements, other(d, fset))
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					out.Statements = append(out.Statements, other(ts, fset))
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = d.Doc
				}
				classIndex[ts.Name.Name] = len(out.Statements)
				out.Statements = append(out.Statements, class(ts, st, doc, fset))
			}
		default:
			out.Statements = append(out.Statements, other(decl, fset))
		}
	}

	// Methods appear after their type in file.Decls; a second pass keeps
	// them in source order inside each class.
	for _, decl := range file.Decls {
		d, ok := decl.(*ast.FuncDecl)
		if !ok || d.Recv == nil {
			continue
		}
		idx, ok := classIndex[receiverName(d)]
		if !ok {
			continue // receiver type declared elsewhere
		}
		out.Statements[idx].Children = append(out.Statements[idx].Children, function(d, fset))
	}
	return out, nil
}

func function(d *ast.FuncDecl, fset *token.FileSet) docgen.Declaration {
	decl := docgen.Declaration{
		Name:      d.Name.Name,
		Kind:      docgen.KindFunction,
		Docstring: docText(d.Doc),
		Line:      fset.Position(d.Pos()).Line,
	}
	if d.Type.Params != nil {
		for _, field := range d.Type.Params.List {
			for _, name := range field.Names {
				decl.Parameters = append(decl.Parameters, name.Name)
			}
		}
	}
	return decl
}

func class(ts *ast.TypeSpec, st *ast.StructType, doc *ast.CommentGroup, fset *token.FileSet) docgen.Declaration {
	decl := docgen.Declaration{
		Name:      ts.Name.Name,
		Kind:      docgen.KindClass,
		Docstring: docText(doc),
		Line:      fset.Position(ts.Pos()).Line,
	}
	for _, field := range st.Fields.List {
		if len(field.Names) > 0 {
			continue // named field, not an embedding
		}
		decl.Bases = append(decl.Bases, baseName(field.Type))
	}
	return decl
}

func other(n ast.Node, fset *token.FileSet) docgen.Declaration {
	return docgen.Declaration{Kind: docgen.KindOther, Line: fset.Position(n.Pos()).Line}
}

func baseName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return baseName(e.X)
	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			return pkg.Name + "." + e.Sel.Name
		}
	}
	return docgen.UnresolvedBase
}

func receiverName(d *ast.FuncDecl) string {
	if len(d.Recv.List) == 0 {
		return ""
	}
	t := d.Recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	// generic receivers carry type parameters
	if idx, ok := t.(*ast.IndexExpr); ok {
		t = idx.X
	}
	if id, ok := t.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

func docText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimRight(cg.Text(), "\n")
}
