package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SyntaxError is an error in a text grammar, located by its 1-based line.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// SyntaxErrors collects every syntax error found in one text grammar.
type SyntaxErrors []*SyntaxError

func (list SyntaxErrors) Error() string {
	msgs := make([]string, len(list))
	for i, e := range list {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Read parses a text grammar:
//
//	// comment
//	%nonterminals S T F
//	%terminals a ( ) + *
//	%start S
//	S->T+S
//	S->T
//
// Symbols in directives are separated by whitespace; every other non-blank
// line is a rule in ParseRule notation. On syntax errors Read returns the
// definition built from the valid lines together with a SyntaxErrors value.
func Read(r io.Reader) (*Definition, error) {
	def := &Definition{}
	var errs SyntaxErrors

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}

		if strings.HasPrefix(text, "%") {
			if err := def.directive(strings.Fields(text)); err != nil {
				errs = append(errs, &SyntaxError{Line: line, Err: err})
			}
			continue
		}

		rule, err := ParseRule(text)
		if err != nil {
			errs = append(errs, &SyntaxError{Line: line, Err: err})
			continue
		}
		def.AddRule(rule, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}

	if len(errs) > 0 {
		return def, errs
	}
	return def, nil
}

func (d *Definition) directive(fields []string) error {
	args := fields[1:]
	switch fields[0] {
	case "%terminals":
		d.Terminals = append(d.Terminals, Symbols(args...)...)
	case "%nonterminals":
		d.NonTerminals = append(d.NonTerminals, Symbols(args...)...)
	case "%start":
		if len(args) != 1 {
			return fmt.Errorf("%%start wants one symbol, got %d", len(args))
		}
		d.SetStart(Sym(args[0]))
	default:
		return fmt.Errorf("unknown directive %q", fields[0])
	}
	return nil
}
