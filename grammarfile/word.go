package grammarfile

import (
	"fmt"
	"strings"

	"github.com/dhamidi/earley/grammar"
)

// Split says how a line of input is cut into terminal symbols.
type Split int

const (
	// SplitChars makes every rune one symbol.
	SplitChars Split = iota
	// SplitFields makes every whitespace-separated field one symbol.
	SplitFields
)

func (s Split) String() string {
	switch s {
	case SplitChars:
		return "chars"
	case SplitFields:
		return "fields"
	}
	return fmt.Sprintf("Split(%d)", int(s))
}

// ParseSplit returns the split mode with the given name.
func ParseSplit(name string) (Split, error) {
	switch name {
	case "chars":
		return SplitChars, nil
	case "fields":
		return SplitFields, nil
	}
	return 0, fmt.Errorf("unknown split mode %q (want chars or fields)", name)
}

// Word cuts line into terminal symbols.
func (s Split) Word(line string) []grammar.Symbol {
	if s == SplitFields {
		return grammar.Symbols(strings.Fields(line)...)
	}
	return grammar.Runes(line)
}

// DefaultSplit is the natural split mode for a grammar file format: EBNF
// tokens are usually longer than one rune.
func DefaultSplit(f Format) Split {
	if f == EBNF {
		return SplitFields
	}
	return SplitChars
}
