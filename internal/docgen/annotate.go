package docgen

import "strings"

// Default marker tokens. Both are matched case-insensitively as substrings.
const (
	DefaultTodoMarker     = "todo"
	DefaultPropertyMarker = "@property"
)

// Extractor splits normalized docstring lines into ordinary body lines and
// TODO annotations, and recognizes the property-promotion marker in method
// bodies.
type Extractor struct {
	todo     string
	property string
}

// NewExtractor returns an Extractor for the given marker tokens. Empty
// tokens fall back to the defaults.
func NewExtractor(todoMarker, propertyMarker string) *Extractor {
	if todoMarker == "" {
		todoMarker = DefaultTodoMarker
	}
	if propertyMarker == "" {
		propertyMarker = DefaultPropertyMarker
	}
	return &Extractor{
		todo:     strings.ToLower(todoMarker),
		property: strings.ToLower(propertyMarker),
	}
}

// Extract scans a normalized docstring. Every line containing the TODO
// marker is removed from the body and returned as one Annotation carrying
// the declaration's origin and the verbatim line text. Relative order is
// preserved on both sides.
func (e *Extractor) Extract(doc, file string, line int) (body []string, annotations []Annotation) {
	if doc == "" {
		return nil, nil
	}
	for _, l := range strings.Split(doc, "\n") {
		if strings.Contains(strings.ToLower(l), e.todo) {
			annotations = append(annotations, Annotation{File: file, Line: line, Text: l})
			continue
		}
		body = append(body, l)
	}
	return body, annotations
}

// Promoted reports whether a TODO-filtered method body carries the property
// marker anywhere.
func (e *Extractor) Promoted(body []string) bool {
	for _, l := range body {
		if strings.Contains(strings.ToLower(l), e.property) {
			return true
		}
	}
	return false
}

// StripMarker joins a promoted body, removes every occurrence of the
// property token and trims surrounding whitespace.
func (e *Extractor) StripMarker(body []string) string {
	s := strings.Join(body, "\n")
	for {
		i := strings.Index(strings.ToLower(s), e.property)
		if i < 0 {
			break
		}
		s = s[:i] + s[i+len(e.property):]
	}
	return strings.TrimSpace(s)
}
