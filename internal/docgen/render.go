package docgen

// Renderer turns declarations into rendered blocks using a shared marker
// configuration.
type Renderer struct {
	ex *Extractor
}

// NewRenderer returns a Renderer using the provided extractor.
func NewRenderer(ex *Extractor) *Renderer {
	return &Renderer{ex: ex}
}

// RenderFunction renders one function or method: its stub plus the
// normalized, TODO-filtered docstring body.
func (r *Renderer) RenderFunction(d Declaration, file string) RenderedBlock {
	body, annotations := r.ex.Extract(NormalizeDocstring(d.Docstring), file, d.Line)
	return RenderedBlock{
		Stub:        FormatStub(d),
		Body:        body,
		Annotations: annotations,
	}
}

// RenderClass renders a class. The class's own docstring is processed first,
// then each method in declaration order. A method whose cleaned body carries
// the property marker is promoted: its marker-stripped text joins the
// class's Promoted list instead of the method list. TODO annotations from
// promoted methods still surface in the class's annotation list.
func (r *Renderer) RenderClass(d Declaration, file string) ClassBlock {
	body, annotations := r.ex.Extract(NormalizeDocstring(d.Docstring), file, d.Line)
	cb := ClassBlock{
		Stub:        FormatStub(d),
		Body:        body,
		Annotations: annotations,
	}
	for _, m := range d.Children {
		mb := r.RenderFunction(m, file)
		cb.Annotations = append(cb.Annotations, mb.Annotations...)
		if r.ex.Promoted(mb.Body) {
			cb.Promoted = append(cb.Promoted, r.ex.StripMarker(mb.Body))
			continue
		}
		cb.Methods = append(cb.Methods, mb)
	}
	return cb
}
