// Package docgen renders declaration trees into markdown documentation
// stubs. It consumes trees produced by a parser collaborator and never
// inspects source syntax itself.
package docgen

// Kind tags a top-level statement in a declaration tree.
type Kind int

const (
	// KindFunction is a standalone function or a method.
	KindFunction Kind = iota
	// KindClass is a class-like type with an ordered method list.
	KindClass
	// KindOther marks statements the generator skips.
	KindOther
)

// UnresolvedBase is rendered in place of a base expression the parser could
// not reduce to a simple identifier.
const UnresolvedBase = "unnamed"

// Declaration is an immutable snapshot of one function or class produced by
// a Parser. The pipeline never mutates declarations.
type Declaration struct {
	Name       string
	Kind       Kind
	Parameters []string // Function only
	Bases      []string // Class only
	Docstring  string   // empty when the declaration has none
	Line       int      // 1-based source line
	Children   []Declaration // method list; empty for functions
}

// Tree is the parser collaborator's result for one source unit: an optional
// module docstring and the ordered top-level statements.
type Tree struct {
	Docstring  string
	Statements []Declaration
}

// Parser produces a declaration tree from raw source text.
type Parser interface {
	Parse(filename string, src []byte) (*Tree, error)
}

// Annotation is a TODO line lifted out of a docstring, carrying the
// originating file and the owning declaration's line.
type Annotation struct {
	File string
	Line int
	Text string
}

// RenderedBlock is the rendered output for one function or method.
type RenderedBlock struct {
	Stub        string
	Body        []string
	Annotations []Annotation
}

// ClassBlock is the rendered output for one class: its own docstring body,
// promoted method content, the remaining method blocks and every annotation
// discovered inside it (own docstring first, then methods in order).
type ClassBlock struct {
	Stub        string
	Body        []string
	Promoted    []string
	Methods     []RenderedBlock
	Annotations []Annotation
}

// DocumentNode is the fully assembled result for one source unit.
type DocumentNode struct {
	Heading        string
	BodyLines      []string
	Checklist      []Annotation
	FunctionBlocks []RenderedBlock
	ClassBlocks    []ClassBlock
}
