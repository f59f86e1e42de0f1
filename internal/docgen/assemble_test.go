package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	return &Tree{
		Docstring: "Utility helpers.\nTODO: tidy",
		Statements: []Declaration{
			{
				Name:      "Foo",
				Kind:      KindClass,
				Bases:     []string{"Base"},
				Docstring: "Container.\n@todo fix this",
				Line:      10,
				Children: []Declaration{
					{Name: "value", Kind: KindFunction, Docstring: "@property Current value.", Line: 13},
					{Name: "name", Kind: KindFunction, Docstring: "Returns the name.\ntodo: rename", Line: 20},
				},
			},
			{
				Name:       "add",
				Kind:       KindFunction,
				Parameters: []string{"a", "b"},
				Docstring:  "Adds two numbers.",
				Line:       3,
			},
		},
	}
}

func TestAssembleChecklistOrder(t *testing.T) {
	a := NewAssembler(NewExtractor("", ""))

	doc := a.Assemble("sample.py", sampleTree())

	// file-level first, then functions, then classes — regardless of the
	// class appearing before the function in source order
	require.Len(t, doc.Checklist, 3)
	assert.Equal(t, Annotation{File: "sample.py", Line: 1, Text: "TODO: tidy"}, doc.Checklist[0])
	assert.Equal(t, Annotation{File: "sample.py", Line: 10, Text: "@todo fix this"}, doc.Checklist[1])
	assert.Equal(t, Annotation{File: "sample.py", Line: 20, Text: "todo: rename"}, doc.Checklist[2])

	require.Len(t, doc.FunctionBlocks, 1)
	require.Len(t, doc.ClassBlocks, 1)
	assert.Equal(t, []string{"Utility helpers."}, doc.BodyLines)
}

func TestMarkdownLayout(t *testing.T) {
	a := NewAssembler(NewExtractor("", ""))

	out := a.Assemble("sample.py", sampleTree()).Markdown()

	want := "# `sample.py`\n" +
		"Utility helpers.\n" +
		"\n" +
		"- [ ] (sample.py, 1, \"TODO: tidy\")\n" +
		"- [ ] (sample.py, 10, \"@todo fix this\")\n" +
		"- [ ] (sample.py, 20, \"todo: rename\")\n" +
		"\n" +
		"## def `add(a, b)`:\n" +
		"Adds two numbers.\n" +
		"\n" +
		"## `class Foo(Base)`:\n" +
		"Container.\n" +
		"\n" +
		"Current value.\n" +
		"\n" +
		"### def `name()`:\n" +
		"Returns the name.\n" +
		"\n" +
		"***\n"
	assert.Equal(t, want, out)
}

func TestMarkdownOmitsEmptyChecklist(t *testing.T) {
	a := NewAssembler(NewExtractor("", ""))

	tree := &Tree{
		Docstring: "Just text.",
		Statements: []Declaration{
			{Name: "add", Kind: KindFunction, Parameters: []string{"a", "b"}, Docstring: "Adds two numbers."},
		},
	}
	out := a.Assemble("sample", tree).Markdown()

	assert.NotContains(t, out, "- [ ]")
	assert.Contains(t, out, "## def `add(a, b)`:\nAdds two numbers.\n")
}

func TestAssembleEmptyTree(t *testing.T) {
	a := NewAssembler(NewExtractor("", ""))

	out := a.Assemble("empty.py", &Tree{}).Markdown()

	assert.Equal(t, "# `empty.py`\n", out)
	assert.False(t, strings.Contains(out, "***"))
}
