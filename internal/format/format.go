// Package format shapes the token stream for printing. It is pure
// post-processing: nothing here feeds back into the scanner.
package format

import (
	"strings"

	"jstok/internal/scanner"
)

// Nice joins token texts with single spaces and then tightens the result so
// common statement punctuation reads like source again: brackets and commas
// lose their padding, and `;`, `{` and `}` start new lines. The rewrites run
// in order over the whole text.
func Nice(toks []scanner.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Text)
		b.WriteByte(' ')
	}
	txt := b.String()
	txt = strings.ReplaceAll(txt, " ( ", "(")
	txt = strings.ReplaceAll(txt, " ) ", ")")
	txt = strings.ReplaceAll(txt, " [ ", "[")
	txt = strings.ReplaceAll(txt, " ] ", "]")
	txt = strings.ReplaceAll(txt, " ,", ",")
	txt = strings.ReplaceAll(txt, " . ", ".")
	txt = strings.ReplaceAll(txt, ";", ";\n")
	txt = strings.ReplaceAll(txt, " ;", ";")
	txt = strings.ReplaceAll(txt, "{ ", "{\n")
	txt = strings.ReplaceAll(txt, "} ", "}\n")
	return txt
}
