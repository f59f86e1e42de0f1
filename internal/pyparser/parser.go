// Package pyparser builds declaration trees from Python source using the
// tree-sitter grammar.
package pyparser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/docstub-labs/docstub/internal/docgen"
)

// Parser implements docgen.Parser for Python sources.
type Parser struct{}

// New returns a Python parser.
func New() *Parser {
	return &Parser{}
}

// Parse builds the declaration tree for one Python file: the module
// docstring plus every top-level statement, with function and class
// definitions fully expanded and everything else tagged as other.
func (p *Parser) Parse(filename string, src []byte) (*docgen.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("parse %s: syntax error", filename)
	}

	out := &docgen.Tree{Docstring: docstring(root, src)}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		out.Statements = append(out.Statements, statement(root.NamedChild(i), src))
	}
	return out, nil
}

func statement(n *sitter.Node, src []byte) docgen.Declaration {
	if n.Type() == "decorated_definition" {
		if def := n.ChildByFieldName("definition"); def != nil {
			n = def
		}
	}
	switch n.Type() {
	case "function_definition":
		return function(n, src)
	case "class_definition":
		return class(n, src)
	}
	return docgen.Declaration{Kind: docgen.KindOther, Line: line(n)}
}

func function(n *sitter.Node, src []byte) docgen.Declaration {
	d := docgen.Declaration{Kind: docgen.KindFunction, Line: line(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = name.Content(src)
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			if id := paramName(params.NamedChild(i), src); id != "" {
				d.Parameters = append(d.Parameters, id)
			}
		}
	}
	d.Docstring = docstring(n.ChildByFieldName("body"), src)
	return d
}

// paramName reduces a parameter node to its identifier. Splat parameters
// (*args, **kwargs) are skipped, matching the plain-positional argument list
// the stub format documents.
func paramName(n *sitter.Node, src []byte) string {
	switch n.Type() {
	case "identifier":
		return n.Content(src)
	case "typed_parameter", "default_parameter", "typed_default_parameter":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c.Type() == "identifier" {
				return c.Content(src)
			}
		}
	}
	return ""
}

func class(n *sitter.Node, src []byte) docgen.Declaration {
	d := docgen.Declaration{Kind: docgen.KindClass, Line: line(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		d.Name = name.Content(src)
	}
	if supers := n.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			c := supers.NamedChild(i)
			switch c.Type() {
			case "identifier":
				d.Bases = append(d.Bases, c.Content(src))
			case "keyword_argument":
				// metaclass=... and friends are not bases
			default:
				d.Bases = append(d.Bases, docgen.UnresolvedBase)
			}
		}
	}
	body := n.ChildByFieldName("body")
	d.Docstring = docstring(body, src)
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			m := body.NamedChild(i)
			if m.Type() == "decorated_definition" {
				if def := m.ChildByFieldName("definition"); def != nil {
					m = def
				}
			}
			if m.Type() == "function_definition" {
				d.Children = append(d.Children, function(m, src))
			}
		}
	}
	return d
}

// docstring returns the cleaned text of a block's leading string literal, or
// "" when the first statement is not a string.
func docstring(body *sitter.Node, src []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return cleandoc(unquote(str.Content(src)))
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// unquote strips string prefixes (r, b, u, f) and the surrounding quote
// characters from a string literal.
func unquote(s string) string {
	i := 0
	for i < len(s) && s[i] != '"' && s[i] != '\'' {
		i++
	}
	s = s[i:]
	for _, q := range []string{`"""`, "'''", `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}

// cleandoc trims the first line and removes the common leading indentation
// from the remaining lines, the way Python normalizes docstrings.
func cleandoc(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, l := range lines[1:] {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		if indent := len(l) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}
	for i, l := range lines[1:] {
		if margin > 0 && len(l) >= margin {
			lines[i+1] = l[margin:]
		} else if strings.TrimSpace(l) == "" {
			lines[i+1] = ""
		}
	}
	lines[0] = strings.TrimSpace(lines[0])
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
