package grammar

import "slices"

// Grammar is a context-free grammar augmented with the rule # -> S, where
// S is the caller's start symbol. A Grammar is never modified after New
// returns and may be shared between goroutines.
type Grammar struct {
	rules        []Rule
	byLeft       map[Symbol][]Rule
	terminals    []Symbol
	nonTerminals []Symbol
	isTerminal   map[Symbol]bool
	isNonTerm    map[Symbol]bool
	start        Symbol
	userStart    Symbol
	startRule    Rule
}

// New builds the augmented grammar. No validation is performed: symbols
// used in rules but missing from the alphabets are accepted and simply never
// scanned or predicted. Duplicate rules are kept once.
func New(rules []Rule, start Symbol, terminals, nonTerminals []Symbol) *Grammar {
	g := &Grammar{
		byLeft:     make(map[Symbol][]Rule),
		isTerminal: make(map[Symbol]bool),
		isNonTerm:  make(map[Symbol]bool),
		userStart:  start,
		start:      AugmentedStart,
		startRule:  NewRule(AugmentedStart, start),
	}

	seen := make(map[string]bool, len(rules)+1)
	for _, r := range append(slices.Clone(rules), g.startRule) {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		g.rules = append(g.rules, r)
		g.byLeft[r.Left()] = append(g.byLeft[r.Left()], r)
	}

	for _, s := range terminals {
		if !g.isTerminal[s] {
			g.isTerminal[s] = true
			g.terminals = append(g.terminals, s)
		}
	}
	for _, s := range append(slices.Clone(nonTerminals), AugmentedStart) {
		if !g.isNonTerm[s] {
			g.isNonTerm[s] = true
			g.nonTerminals = append(g.nonTerminals, s)
		}
	}

	return g
}

// Rules returns all rules, the augmented start rule last.
func (g *Grammar) Rules() []Rule {
	return slices.Clone(g.rules)
}

// RulesFor returns the rules whose left-hand side is sym.
// The returned slice must not be modified.
func (g *Grammar) RulesFor(sym Symbol) []Rule {
	return g.byLeft[sym]
}

// Terminals returns the terminal alphabet in declaration order.
func (g *Grammar) Terminals() []Symbol {
	return slices.Clone(g.terminals)
}

// NonTerminals returns the non-terminal alphabet in declaration order,
// including the augmented start symbol.
func (g *Grammar) NonTerminals() []Symbol {
	return slices.Clone(g.nonTerminals)
}

func (g *Grammar) IsTerminal(s Symbol) bool {
	return g.isTerminal[s]
}

func (g *Grammar) IsNonTerminal(s Symbol) bool {
	return g.isNonTerm[s]
}

// Start returns the augmented start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// UserStart returns the start symbol the grammar was built with.
func (g *Grammar) UserStart() Symbol {
	return g.userStart
}

// StartRule returns the synthetic rule # -> UserStart().
func (g *Grammar) StartRule() Rule {
	return g.startRule
}
