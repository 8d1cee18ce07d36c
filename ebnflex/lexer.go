// Package ebnflex cuts words into terminal symbols with a lexical grammar
// written in EBNF. Every production whose name starts with an upper-case
// letter is a token; at each position the longest match wins and its
// production name becomes the terminal symbol. Whitespace between tokens is
// skipped.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/earley/grammar"
	"golang.org/x/exp/ebnf"
)

// Token is a lexeme and the production it matched.
type Token struct {
	Kind   string
	Text   string
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Text)
}

// Error reports input that no token production matches.
type Error struct {
	Offset int
	Rune   rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: no token matches %q", e.Offset, e.Rune)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input with an EBNF grammar. It is safe for concurrent use;
// every call keeps its own match state.
type Lexer struct {
	grammar ebnf.Grammar
	tokens  []string
}

// New returns a lexer for g. Token productions are tried in name order, so
// among equally long matches the alphabetically first name wins.
func New(g ebnf.Grammar) *Lexer {
	l := &Lexer{grammar: g}
	for name, prod := range g {
		if prod.Expr == nil || !isToken(name) {
			continue
		}
		l.tokens = append(l.tokens, name)
	}
	slices.Sort(l.tokens)
	return l
}

func isToken(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// Load reads a lexical grammar from an EBNF file.
func Load(filename string) (*Lexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open lexer grammar: %w", err)
	}
	defer f.Close()

	return Read(filename, f)
}

// Read parses a lexical grammar from r.
func Read(filename string, r io.Reader) (*Lexer, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse lexer grammar: %w", err)
	}
	return New(g), nil
}

// Tokens returns the names of the token productions.
func (l *Lexer) Tokens() []string {
	return slices.Clone(l.tokens)
}

// Tokenize cuts input into tokens.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	var out []Token
	m := &matcher{grammar: l.grammar, input: input}
	pos := 0
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		// Match lengths depend on the offset only, so the memo survives
		// across token productions but not across positions.
		m.memo = make(map[memoKey]int)

		var kind string
		best := 0
		for _, name := range l.tokens {
			m.visiting = make(map[memoKey]bool)
			if n := m.name(name, pos); n > best {
				best, kind = n, name
			}
		}
		if best == 0 {
			return out, &Error{Offset: pos, Rune: r}
		}

		out = append(out, Token{Kind: kind, Text: input[pos : pos+best], Offset: pos})
		pos += best
	}
	return out, nil
}

// Word tokenizes input and returns the token kinds as terminal symbols.
func (l *Lexer) Word(input string) ([]grammar.Symbol, error) {
	tokens, err := l.Tokenize(input)
	if err != nil {
		return nil, err
	}
	word := make([]grammar.Symbol, len(tokens))
	for i, t := range tokens {
		word[i] = grammar.Sym(t.Kind)
	}
	return word, nil
}

type matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

// match returns the length of the longest prefix of input[offset:] that
// expr matches greedily, or 0.
func (m *matcher) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		if strings.HasPrefix(m.input[offset:], e.String) {
			return len(e.String)
		}
		return 0

	case *ebnf.Range:
		return m.matchRange(e, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total)
			if n == 0 && !m.nullable(item, nil) {
				return 0
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			best = max(best, m.match(alt, offset))
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(e.Body, offset+total)
			if n == 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		return m.match(e.Body, offset)

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.name(e.String, offset)
	}
	return 0
}

// name matches a production by name. Left recursion at the same offset
// matches nothing.
func (m *matcher) name(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	if m.visiting[key] {
		return 0
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = 0
		return 0
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}

func (m *matcher) matchRange(e *ebnf.Range, offset int) int {
	lo, _ := utf8.DecodeRuneInString(e.Begin.String)
	hi, _ := utf8.DecodeRuneInString(e.End.String)
	if offset >= len(m.input) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(m.input[offset:])
	if r < lo || r > hi {
		return 0
	}
	return size
}

// nullable reports whether expr may match the empty string, so that a
// zero-length match inside a sequence is not a failure. visiting holds the
// productions being resolved; a production reached again through itself
// adds nothing.
func (m *matcher) nullable(expr ebnf.Expression, visiting map[string]bool) bool {
	switch e := expr.(type) {
	case nil, *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Group:
		return m.nullable(e.Body, visiting)
	case ebnf.Alternative:
		for _, alt := range e {
			if m.nullable(alt, visiting) {
				return true
			}
		}
		return false
	case ebnf.Sequence:
		for _, item := range e {
			if !m.nullable(item, visiting) {
				return false
			}
		}
		return true
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Name:
		prod, ok := m.grammar[e.String]
		if !ok || visiting[e.String] {
			return false
		}
		if visiting == nil {
			visiting = make(map[string]bool)
		}
		visiting[e.String] = true
		defer delete(visiting, e.String)
		return m.nullable(prod.Expr, visiting)
	}
	return false
}
