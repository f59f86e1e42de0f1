package docgen

import "strings"

// FormatStub renders a declaration's signature as a one-line text stub.
// Functions render as "def `name(p1, p2)`:". Classes render as
// "`class Name(B1, B2)`:" with the parentheses omitted when the base list is
// empty.
func FormatStub(d Declaration) string {
	var b strings.Builder
	if d.Kind == KindClass {
		b.WriteString("`class ")
		b.WriteString(d.Name)
		if len(d.Bases) > 0 {
			b.WriteByte('(')
			b.WriteString(strings.Join(d.Bases, ", "))
			b.WriteByte(')')
		}
		b.WriteString("`:")
		return b.String()
	}
	b.WriteString("def `")
	b.WriteString(d.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(d.Parameters, ", "))
	b.WriteString(")`:")
	return b.String()
}
