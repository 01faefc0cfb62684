// Package filter selects tokens from the scanner's output stream. It covers
// the flag-driven rules (ignore lists, substring search, kind restriction)
// and a small expression language for combined conditions, e.g.
//
//	kind is comment and text has "TODO"
//	not (kind is string or kind is comment)
package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"jstok/internal/scanner"
)

type Expr struct {
	First *AndExpr   `parser:"@@"`
	Rest  []*AndExpr `parser:"( 'or' @@ )*"`
}

type AndExpr struct {
	First *Term   `parser:"@@"`
	Rest  []*Term `parser:"( 'and' @@ )*"`
}

type Term struct {
	Not   *Term     `parser:"'not' @@"`
	Group *Expr     `parser:"| '(' @@ ')'"`
	Kind  *KindTest `parser:"| @@"`
	Text  *TextTest `parser:"| @@"`
}

type KindTest struct {
	Name string `parser:"'kind' 'is' @Ident"`
}

type TextTest struct {
	Op    string `parser:"'text' @('is'|'has')"`
	Value string `parser:"@String"`
}

var parser = participle.MustBuild[Expr](participle.Unquote("String"))

// Parse compiles a filter expression. Unknown kind names are rejected here
// rather than silently matching nothing.
func Parse(src string) (*Expr, error) {
	expr, err := parser.ParseString("filter", src)
	if err != nil {
		return nil, err
	}
	if err := expr.validate(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (e *Expr) Match(tok scanner.Token) bool {
	if e.First.Match(tok) {
		return true
	}
	for _, a := range e.Rest {
		if a.Match(tok) {
			return true
		}
	}
	return false
}

func (a *AndExpr) Match(tok scanner.Token) bool {
	if !a.First.Match(tok) {
		return false
	}
	for _, t := range a.Rest {
		if !t.Match(tok) {
			return false
		}
	}
	return true
}

func (t *Term) Match(tok scanner.Token) bool {
	switch {
	case t.Not != nil:
		return !t.Not.Match(tok)
	case t.Group != nil:
		return t.Group.Match(tok)
	case t.Kind != nil:
		return tok.Kind.String() == t.Kind.Name
	case t.Text != nil:
		if t.Text.Op == "is" {
			return tok.Text == t.Text.Value
		}
		return strings.Contains(tok.Text, t.Text.Value)
	}
	return false
}

func (e *Expr) validate() error {
	if err := e.First.validate(); err != nil {
		return err
	}
	for _, a := range e.Rest {
		if err := a.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a *AndExpr) validate() error {
	if err := a.First.validate(); err != nil {
		return err
	}
	for _, t := range a.Rest {
		if err := t.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Term) validate() error {
	switch {
	case t.Not != nil:
		return t.Not.validate()
	case t.Group != nil:
		return t.Group.validate()
	case t.Kind != nil:
		if _, ok := scanner.KindFromName(t.Kind.Name); !ok {
			return fmt.Errorf("unknown token kind %q", t.Kind.Name)
		}
	}
	return nil
}

// Rules is the selection the command line applies to every token. The zero
// value keeps everything.
type Rules struct {
	Ignore []string       // exact token texts to drop
	Search string         // when set, keep only tokens containing it
	Kinds  []scanner.Kind // when non-empty, keep only these kinds
	Expr   *Expr          // optional compiled expression
}

func (r *Rules) Match(tok scanner.Token) bool {
	for _, ig := range r.Ignore {
		if tok.Text == ig {
			return false
		}
	}
	if r.Search != "" && !strings.Contains(tok.Text, r.Search) {
		return false
	}
	if len(r.Kinds) > 0 {
		keep := false
		for _, k := range r.Kinds {
			if tok.Kind == k {
				keep = true
				break
			}
		}
		if !keep {
			return false
		}
	}
	if r.Expr != nil && !r.Expr.Match(tok) {
		return false
	}
	return true
}
