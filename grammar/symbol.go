// Package grammar provides context-free grammars for the Earley recognizer:
// symbols, rules, augmented grammars and the textual rule notation.
package grammar

import (
	"strconv"
	"strings"
)

type symbolKind uint8

const (
	userSymbol symbolKind = iota
	augmentedStart
)

// Symbol is a terminal or non-terminal grammar symbol.
// Symbols are comparable and can be used as map keys.
type Symbol struct {
	kind symbolKind
	name string
}

// AugmentedStart is the synthetic start symbol added by New.
// It never equals a symbol created with Sym, whatever its name.
var AugmentedStart = Symbol{kind: augmentedStart}

// Sym returns the user symbol with the given name.
func Sym(name string) Symbol {
	return Symbol{name: name}
}

// Symbols returns one user symbol per name.
func Symbols(names ...string) []Symbol {
	syms := make([]Symbol, len(names))
	for i, name := range names {
		syms[i] = Sym(name)
	}
	return syms
}

// Runes returns one user symbol per rune of s.
func Runes(s string) []Symbol {
	syms := make([]Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Sym(string(r)))
	}
	return syms
}

// Name returns the symbol name. The augmented start symbol has no name.
func (s Symbol) Name() string {
	return s.name
}

// IsAugmented reports whether s is the synthetic start symbol.
func (s Symbol) IsAugmented() bool {
	return s.kind == augmentedStart
}

func (s Symbol) String() string {
	if s.IsAugmented() {
		return "#"
	}
	return s.name
}

// key encodes the symbol so that distinct symbols never share an encoding.
func (s Symbol) key(b *strings.Builder) {
	if s.IsAugmented() {
		b.WriteString("#;")
		return
	}
	b.WriteByte('u')
	b.WriteString(strconv.Itoa(len(s.name)))
	b.WriteByte(':')
	b.WriteString(s.name)
}

// Join renders symbols juxtaposed when all are single runes and space
// separated otherwise.
func Join(syms []Symbol) string {
	single := true
	for _, s := range syms {
		if len([]rune(s.String())) != 1 {
			single = false
			break
		}
	}
	sep := ""
	if !single {
		sep = " "
	}
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
