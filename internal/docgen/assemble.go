package docgen

import (
	"fmt"
	"strings"
)

// Assembler builds one DocumentNode per source unit.
type Assembler struct {
	r  *Renderer
	ex *Extractor
}

// NewAssembler returns an Assembler using the provided extractor.
func NewAssembler(ex *Extractor) *Assembler {
	return &Assembler{r: NewRenderer(ex), ex: ex}
}

// Assemble renders a source unit: file heading, TODO-filtered module
// docstring, all functions in declaration order, then all classes in
// declaration order. The checklist collects annotations in discovery order:
// file-level first, then each function's, then each class's (own docstring
// before methods).
func (a *Assembler) Assemble(filename string, tree *Tree) DocumentNode {
	doc := DocumentNode{Heading: "# `" + filename + "`"}

	body, annotations := a.ex.Extract(NormalizeDocstring(tree.Docstring), filename, 1)
	doc.BodyLines = body
	doc.Checklist = append(doc.Checklist, annotations...)

	for _, d := range tree.Statements {
		if d.Kind != KindFunction {
			continue
		}
		b := a.r.RenderFunction(d, filename)
		doc.FunctionBlocks = append(doc.FunctionBlocks, b)
		doc.Checklist = append(doc.Checklist, b.Annotations...)
	}
	for _, d := range tree.Statements {
		if d.Kind != KindClass {
			continue
		}
		cb := a.r.RenderClass(d, filename)
		doc.ClassBlocks = append(doc.ClassBlocks, cb)
		doc.Checklist = append(doc.Checklist, cb.Annotations...)
	}
	return doc
}

// Markdown renders the assembled document as markdown text.
func (n DocumentNode) Markdown() string {
	var b strings.Builder
	b.WriteString(n.Heading)
	b.WriteByte('\n')
	writeLines(&b, n.BodyLines)

	if len(n.Checklist) > 0 {
		b.WriteByte('\n')
		for _, a := range n.Checklist {
			fmt.Fprintf(&b, "- [ ] (%s, %d, %q)\n", a.File, a.Line, a.Text)
		}
	}

	for _, fb := range n.FunctionBlocks {
		b.WriteString("\n## ")
		b.WriteString(fb.Stub)
		b.WriteByte('\n')
		writeLines(&b, fb.Body)
	}

	for _, cb := range n.ClassBlocks {
		b.WriteString("\n## ")
		b.WriteString(cb.Stub)
		b.WriteByte('\n')
		writeLines(&b, cb.Body)
		for _, p := range cb.Promoted {
			b.WriteByte('\n')
			b.WriteString(p)
			b.WriteByte('\n')
		}
		for _, m := range cb.Methods {
			b.WriteString("\n### ")
			b.WriteString(m.Stub)
			b.WriteByte('\n')
			writeLines(&b, m.Body)
		}
		b.WriteString("\n***\n")
	}
	return b.String()
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}
