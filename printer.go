// printer.go — user-facing rendering of values.
package eerolang

import (
	"strconv"
	"strings"
)

// quoteString re-encodes s as a double-quoted eerolang string literal,
// escaping what the lexer would need escaped.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatScalar(v Value) string {
	switch v.Tag {
	case TagInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case TagNum:
		return strconv.FormatFloat(v.AsNum(), 'g', -1, 64)
	case TagStr:
		return quoteString(v.AsStr())
	default:
		return "<nothing>"
	}
}

// FormatValue renders a value the way print shows it: integers in decimal,
// floats in their shortest round-trip form, strings double-quoted, lists one
// level deep with nested lists shown as an opaque placeholder.
func FormatValue(v Value) string {
	if v.Tag != TagList {
		return formatScalar(v)
	}
	elems := v.AsList().Elems
	parts := make([]string, 0, len(elems))
	for _, el := range elems {
		if el.Tag == TagList {
			parts = append(parts, "<nested list>")
			continue
		}
		parts = append(parts, formatScalar(el))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
