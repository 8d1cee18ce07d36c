package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingArrow = errors.New(`missing "->"`)
	ErrEmptyLeft    = errors.New("empty left-hand side")
)

// Epsilon on its own as a right-hand side denotes the empty production.
const Epsilon = "ε"

// ParseRule parses a rule written as LEFT->RIGHT. The left side is a single
// symbol named by the text before the arrow. Every rune of the right side is
// one symbol; an empty right side is the empty production. Surrounding
// whitespace is ignored on both sides. The arrow may also be written "→".
func ParseRule(s string) (Rule, error) {
	left, right, ok := strings.Cut(s, "->")
	if !ok {
		left, right, ok = strings.Cut(s, "→")
	}
	if !ok {
		return Rule{}, fmt.Errorf("parse rule %q: %w", s, ErrMissingArrow)
	}

	left = strings.TrimSpace(left)
	if left == "" {
		return Rule{}, fmt.Errorf("parse rule %q: %w", s, ErrEmptyLeft)
	}

	right = strings.TrimSpace(right)
	if right == Epsilon {
		right = ""
	}

	return NewRule(Sym(left), Runes(right)...), nil
}

// MustParseRules parses each rule with ParseRule and panics on error.
// It is meant for grammars written as literals.
func MustParseRules(rules ...string) []Rule {
	out := make([]Rule, len(rules))
	for i, s := range rules {
		r, err := ParseRule(s)
		if err != nil {
			panic(err)
		}
		out[i] = r
	}
	return out
}
