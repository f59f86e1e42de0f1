package pyparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstub-labs/docstub/internal/docgen"
)

const fixture = `"""Module things.

# Heading
"""

import os


def add(a, b):
    """Adds two numbers."""
    return a + b


class Foo(Base, object):
    """Container.

    TODO: slots
    """

    def value(self):
        """@property Current value."""
        return self._v
`

func TestParse(t *testing.T) {
	tree, err := New().Parse("sample.py", []byte(fixture))
	require.NoError(t, err)

	assert.Equal(t, "Module things.\n\n# Heading", tree.Docstring)
	require.Len(t, tree.Statements, 3)

	assert.Equal(t, docgen.KindOther, tree.Statements[0].Kind, "import is not a declaration")

	fn := tree.Statements[1]
	assert.Equal(t, docgen.KindFunction, fn.Kind)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Parameters)
	assert.Equal(t, "Adds two numbers.", fn.Docstring)
	assert.Equal(t, 9, fn.Line)

	cls := tree.Statements[2]
	assert.Equal(t, docgen.KindClass, cls.Kind)
	assert.Equal(t, "Foo", cls.Name)
	assert.Equal(t, []string{"Base", "object"}, cls.Bases)
	assert.Equal(t, "Container.\n\nTODO: slots", cls.Docstring)
	require.Len(t, cls.Children, 1)
	assert.Equal(t, "value", cls.Children[0].Name)
	assert.Equal(t, []string{"self"}, cls.Children[0].Parameters)
	assert.Equal(t, "@property Current value.", cls.Children[0].Docstring)
}

func TestParseParameterShapes(t *testing.T) {
	src := `def f(a, b=1, c: int = 2, *args, **kwargs):
    pass
`
	tree, err := New().Parse("p.py", []byte(src))
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	assert.Equal(t, []string{"a", "b", "c"}, tree.Statements[0].Parameters)
}

func TestParseUnresolvableBase(t *testing.T) {
	src := `class C(make_base()):
    pass
`
	tree, err := New().Parse("c.py", []byte(src))
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	assert.Equal(t, []string{docgen.UnresolvedBase}, tree.Statements[0].Bases)
}

func TestParseDecoratedDefinitions(t *testing.T) {
	src := `@decorator
def g():
    """Decorated."""
    pass


class C:
    @property
    def v(self):
        """Value."""
        return 1
`
	tree, err := New().Parse("d.py", []byte(src))
	require.NoError(t, err)
	require.Len(t, tree.Statements, 2)
	assert.Equal(t, "g", tree.Statements[0].Name)
	assert.Equal(t, "Decorated.", tree.Statements[0].Docstring)
	require.Len(t, tree.Statements[1].Children, 1)
	assert.Equal(t, "v", tree.Statements[1].Children[0].Name)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := New().Parse("bad.py", []byte("def broken(:\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.py")
}

func TestParseMissingDocstrings(t *testing.T) {
	src := `def f():
    return 1
`
	tree, err := New().Parse("n.py", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "", tree.Docstring)
	require.Len(t, tree.Statements, 1)
	assert.Equal(t, "", tree.Statements[0].Docstring)
}
