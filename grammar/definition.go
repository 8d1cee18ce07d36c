package grammar

// Definition is a grammar as written by a user, before augmentation.
// Alphabets and the start symbol may be omitted and are then inferred from
// the rules.
type Definition struct {
	Rules []Rule
	// Lines holds the source line of each rule, or 0 when unknown.
	Lines        []int
	Start        Symbol
	HasStart     bool
	Terminals    []Symbol
	NonTerminals []Symbol
}

// UndeclaredSymbol is a symbol used by a rule that belongs to neither
// alphabet of its grammar.
type UndeclaredSymbol struct {
	Symbol Symbol
	Line   int
}

// AddRule appends r, found on the given source line.
func (d *Definition) AddRule(r Rule, line int) {
	d.Rules = append(d.Rules, r)
	d.Lines = append(d.Lines, line)
}

// SetStart sets the start symbol.
func (d *Definition) SetStart(s Symbol) {
	d.Start = s
	d.HasStart = true
}

// EffectiveNonTerminals returns the declared non-terminals or, when none are
// declared, the left-hand sides of all rules.
func (d *Definition) EffectiveNonTerminals() []Symbol {
	if len(d.NonTerminals) > 0 {
		return d.NonTerminals
	}
	var out []Symbol
	seen := make(map[Symbol]bool)
	for _, r := range d.Rules {
		if !seen[r.Left()] {
			seen[r.Left()] = true
			out = append(out, r.Left())
		}
	}
	return out
}

// EffectiveTerminals returns the declared terminals or, when none are
// declared, every right-hand side symbol that is not a non-terminal.
func (d *Definition) EffectiveTerminals() []Symbol {
	if len(d.Terminals) > 0 {
		return d.Terminals
	}
	seen := make(map[Symbol]bool)
	for _, s := range d.EffectiveNonTerminals() {
		seen[s] = true
	}
	var out []Symbol
	for _, r := range d.Rules {
		for _, s := range r.right {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// EffectiveStart returns the declared start symbol, the left-hand side of the
// first rule, or S for an empty definition.
func (d *Definition) EffectiveStart() Symbol {
	switch {
	case d.HasStart:
		return d.Start
	case len(d.Rules) > 0:
		return d.Rules[0].Left()
	default:
		return Sym("S")
	}
}

// Grammar builds the augmented grammar.
func (d *Definition) Grammar() *Grammar {
	return New(d.Rules, d.EffectiveStart(), d.EffectiveTerminals(), d.EffectiveNonTerminals())
}

// Undeclared lists symbols that appear in rules but in neither effective
// alphabet, each with the first line it appears on. Such symbols are never
// scanned or predicted.
func (d *Definition) Undeclared() []UndeclaredSymbol {
	known := make(map[Symbol]bool)
	for _, s := range d.EffectiveTerminals() {
		known[s] = true
	}
	for _, s := range d.EffectiveNonTerminals() {
		known[s] = true
	}

	var out []UndeclaredSymbol
	report := func(s Symbol, line int) {
		if !known[s] {
			known[s] = true
			out = append(out, UndeclaredSymbol{Symbol: s, Line: line})
		}
	}
	for i, r := range d.Rules {
		line := 0
		if i < len(d.Lines) {
			line = d.Lines[i]
		}
		report(r.Left(), line)
		for _, s := range r.right {
			report(s, line)
		}
	}
	return out
}
