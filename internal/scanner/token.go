package scanner

// Kind classifies a token.
type Kind int

const (
	Identifier Kind = iota // names, keywords, anything word-shaped
	Number                 // decimal or 0x hex literal
	String                 // quote or tick delimited, delimiters included
	Comment                // // or /* */ form, markers included
	Operator               // punctuation and operator runs
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Operator:
		return "operator"
	}
	return "unknown"
}

// KindFromName maps a kind name back to its Kind.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "identifier":
		return Identifier, true
	case "number":
		return Number, true
	case "string":
		return String, true
	case "comment":
		return Comment, true
	case "operator":
		return Operator, true
	}
	return 0, false
}

// Token is one classified span of source text. Text holds the exact runes
// consumed, including delimiters such as quotes and comment markers.
type Token struct {
	Kind Kind
	Text string
}
