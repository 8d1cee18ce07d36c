// Package ebnfgrammar converts EBNF grammars, as read by golang.org/x/exp/ebnf,
// into plain context-free grammar definitions.
//
// Every production becomes a non-terminal and every token literal one
// terminal symbol. Ranges expand to one single-rune terminal per rune.
// Options, repetitions, groups and nested alternatives are replaced by
// auxiliary non-terminals named "<production>#<n>", which cannot clash
// with EBNF production names. Terminals keep the spelling of their literal,
// so a production whose name is also a token literal becomes the
// non-terminal "<production>#0".
package ebnfgrammar

import (
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/earley/grammar"
	"golang.org/x/exp/ebnf"
)

// Parse reads an EBNF grammar and converts it with start as start symbol.
func Parse(filename string, r io.Reader, start string) (*grammar.Definition, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return Convert(g, start), nil
}

// Convert turns g into a definition whose start symbol is start.
// Productions are converted in name order so the result is deterministic.
func Convert(g ebnf.Grammar, start string) *grammar.Definition {
	c := &converter{
		def:          &grammar.Definition{},
		names:        make(map[string]grammar.Symbol, len(g)),
		terminals:    make(map[grammar.Symbol]bool),
		nonTerminals: make(map[grammar.Symbol]bool),
		fresh:        make(map[string]int),
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	literals := make(map[string]bool)
	for _, prod := range g {
		collectLiterals(prod.Expr, literals)
	}
	for _, name := range names {
		sym := grammar.Sym(name)
		if literals[name] {
			sym = grammar.Sym(name + "#0")
		}
		c.names[name] = sym
		c.addNonTerminal(sym)
	}
	for _, name := range names {
		prod := g[name]
		line := 0
		if prod.Name != nil {
			line = prod.Name.Pos().Line
		}
		c.define(c.names[name], name, prod.Expr, line)
	}

	c.def.SetStart(c.name(start))
	return c.def
}

type converter struct {
	def          *grammar.Definition
	names        map[string]grammar.Symbol
	terminals    map[grammar.Symbol]bool
	nonTerminals map[grammar.Symbol]bool
	fresh        map[string]int
}

// name returns the non-terminal for a production name. Names without a
// production keep their spelling and stay undeclared unless a lexer
// supplies them as tokens.
func (c *converter) name(name string) grammar.Symbol {
	if s, ok := c.names[name]; ok {
		return s
	}
	return grammar.Sym(name)
}

func (c *converter) terminal(s grammar.Symbol) {
	if !c.terminals[s] {
		c.terminals[s] = true
		c.def.Terminals = append(c.def.Terminals, s)
	}
}

func (c *converter) addNonTerminal(s grammar.Symbol) {
	if !c.nonTerminals[s] {
		c.nonTerminals[s] = true
		c.def.NonTerminals = append(c.def.NonTerminals, s)
	}
}

func (c *converter) auxiliary(owner string) grammar.Symbol {
	c.fresh[owner]++
	s := grammar.Sym(fmt.Sprintf("%s#%d", owner, c.fresh[owner]))
	c.addNonTerminal(s)
	return s
}

// define adds one rule lhs -> alt for every alternative of expr.
func (c *converter) define(lhs grammar.Symbol, owner string, expr ebnf.Expression, line int) {
	for _, alt := range c.alternatives(owner, expr, line) {
		c.def.AddRule(grammar.NewRule(lhs, alt...), line)
	}
}

// alternatives returns the right-hand sides expr stands for.
func (c *converter) alternatives(owner string, expr ebnf.Expression, line int) [][]grammar.Symbol {
	switch e := expr.(type) {
	case nil:
		return [][]grammar.Symbol{nil}
	case ebnf.Alternative:
		var out [][]grammar.Symbol
		for _, x := range e {
			out = append(out, c.alternatives(owner, x, line)...)
		}
		return out
	case ebnf.Sequence:
		var rhs []grammar.Symbol
		for _, x := range e {
			rhs = append(rhs, c.symbols(owner, x, line)...)
		}
		return [][]grammar.Symbol{rhs}
	case *ebnf.Group:
		return c.alternatives(owner, e.Body, line)
	case *ebnf.Range:
		var out [][]grammar.Symbol
		for _, r := range runeRange(e) {
			s := grammar.Sym(string(r))
			c.terminal(s)
			out = append(out, []grammar.Symbol{s})
		}
		return out
	default:
		return [][]grammar.Symbol{c.symbols(owner, expr, line)}
	}
}

// symbols returns the symbols that stand for expr inside a sequence.
func (c *converter) symbols(owner string, expr ebnf.Expression, line int) []grammar.Symbol {
	switch e := expr.(type) {
	case nil, *ebnf.Bad:
		return nil
	case *ebnf.Name:
		return []grammar.Symbol{c.name(e.String)}
	case *ebnf.Token:
		if e.String == "" {
			return nil
		}
		s := grammar.Sym(e.String)
		c.terminal(s)
		return []grammar.Symbol{s}
	case *ebnf.Option:
		aux := c.auxiliary(owner)
		c.define(aux, owner, e.Body, line)
		c.def.AddRule(grammar.NewRule(aux), line)
		return []grammar.Symbol{aux}
	case *ebnf.Repetition:
		aux := c.auxiliary(owner)
		for _, alt := range c.alternatives(owner, e.Body, line) {
			c.def.AddRule(grammar.NewRule(aux, append(alt, aux)...), line)
		}
		c.def.AddRule(grammar.NewRule(aux), line)
		return []grammar.Symbol{aux}
	default:
		aux := c.auxiliary(owner)
		c.define(aux, owner, expr, line)
		return []grammar.Symbol{aux}
	}
}

// collectLiterals adds every terminal spelling in expr to set.
func collectLiterals(expr ebnf.Expression, set map[string]bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		set[e.String] = true
	case *ebnf.Range:
		for _, r := range runeRange(e) {
			set[string(r)] = true
		}
	case ebnf.Alternative:
		for _, x := range e {
			collectLiterals(x, set)
		}
	case ebnf.Sequence:
		for _, x := range e {
			collectLiterals(x, set)
		}
	case *ebnf.Group:
		collectLiterals(e.Body, set)
	case *ebnf.Option:
		collectLiterals(e.Body, set)
	case *ebnf.Repetition:
		collectLiterals(e.Body, set)
	}
}

func runeRange(r *ebnf.Range) []rune {
	first, last := []rune(r.Begin.String), []rune(r.End.String)
	if len(first) != 1 || len(last) != 1 {
		return nil
	}
	var out []rune
	for x := first[0]; x <= last[0]; x++ {
		out = append(out, x)
	}
	return out
}
