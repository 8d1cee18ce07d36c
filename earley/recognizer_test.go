package earley

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dhamidi/earley/grammar"
)

func balancedGrammar() *grammar.Grammar {
	return grammar.New(
		grammar.MustParseRules("S->aSbS", "S->"),
		grammar.Sym("S"),
		grammar.Runes("ab"),
		grammar.Symbols("S"),
	)
}

func arithmeticGrammar() *grammar.Grammar {
	return grammar.New(
		grammar.MustParseRules("S->T+S", "S->T", "T->F*T", "T->F", "F->(S)", "F->a"),
		grammar.Sym("S"),
		grammar.Runes("a()+*"),
		grammar.Symbols("S", "T", "F"),
	)
}

type RecognizerSuite struct {
	suite.Suite
}

func TestRecognizerSuite(t *testing.T) {
	suite.Run(t, new(RecognizerSuite))
}

func (s *RecognizerSuite) check(g *grammar.Grammar, words map[string]bool) {
	r := New(g)
	for word, want := range words {
		s.Equal(want, r.Recognize(grammar.Runes(word)), "word %q", word)
	}
}

func (s *RecognizerSuite) TestEmptyProductionAcceptsEmptyWord() {
	g := grammar.New(grammar.MustParseRules("S->"), grammar.Sym("S"), nil, grammar.Symbols("S"))
	s.True(Recognize(g, nil))
}

func (s *RecognizerSuite) TestNonNullableRejectsEmptyWord() {
	g := grammar.New(grammar.MustParseRules("S->a"), grammar.Sym("S"), grammar.Runes("a"), grammar.Symbols("S"))
	s.False(Recognize(g, nil))
	s.True(Recognize(g, grammar.Runes("a")))
}

func (s *RecognizerSuite) TestBalancedGrammar() {
	s.check(balancedGrammar(), map[string]bool{
		"":       true,
		"ab":     true,
		"aabb":   true,
		"abab":   true,
		"aababb": true,
		"ba":     false,
		"aab":    false,
		"abb":    false,
		"c":      false,
	})
}

func (s *RecognizerSuite) TestArithmeticGrammar() {
	s.check(arithmeticGrammar(), map[string]bool{
		"a":         true,
		"a+a*a":     true,
		"(a+a)*a":   true,
		"((a))":     true,
		"a*(a+a)+a": true,
		"a+":        false,
		"(a+a":      false,
		"":          false,
		"a a":       false,
		"+a":        false,
	})
}

func (s *RecognizerSuite) TestLeftRecursion() {
	g := grammar.New(
		grammar.MustParseRules("E->E+n", "E->n"),
		grammar.Sym("E"),
		grammar.Runes("+n"),
		grammar.Symbols("E"),
	)
	s.check(g, map[string]bool{
		"n":     true,
		"n+n+n": true,
		"n+":    false,
	})
}

func (s *RecognizerSuite) TestNullableChain() {
	// Completion of A and B happens at the position where they started, so
	// the fixpoint has to run more than one round.
	g := grammar.New(
		grammar.MustParseRules("S->ABc", "A->", "B->A", "B->b"),
		grammar.Sym("S"),
		grammar.Runes("bc"),
		grammar.Symbols("S", "A", "B"),
	)
	s.check(g, map[string]bool{
		"c":  true,
		"bc": true,
		"b":  false,
	})
}

func (s *RecognizerSuite) TestAmbiguousGrammar() {
	g := grammar.New(
		grammar.MustParseRules("S->SS", "S->a"),
		grammar.Sym("S"),
		grammar.Runes("a"),
		grammar.Symbols("S"),
	)
	s.check(g, map[string]bool{
		"aaaaa": true,
		"":      false,
	})
}

func (s *RecognizerSuite) TestUndeclaredSymbolsNeverMatch() {
	// 'b' is not a declared terminal and X is not a declared non-terminal.
	g := grammar.New(
		grammar.MustParseRules("S->ab", "S->X", "X->a"),
		grammar.Sym("S"),
		grammar.Runes("a"),
		grammar.Symbols("S"),
	)
	s.False(Recognize(g, grammar.Runes("ab")))
	s.False(Recognize(g, grammar.Runes("a")))
}

func (s *RecognizerSuite) TestUserHashSymbolDoesNotConfuseAcceptance() {
	g := grammar.New(
		grammar.MustParseRules("#->a", "S->#b"),
		grammar.Sym("S"),
		grammar.Runes("ab"),
		grammar.Symbols("S", "#"),
	)
	s.True(Recognize(g, grammar.Runes("ab")))
	s.False(Recognize(g, grammar.Runes("a")))
}

func (s *RecognizerSuite) TestMultiRuneSymbols() {
	g := grammar.New(
		[]grammar.Rule{
			grammar.NewRule(grammar.Sym("stmt"), grammar.Symbols("if", "cond", "then", "stmt")...),
			grammar.NewRule(grammar.Sym("stmt"), grammar.Sym("skip")),
		},
		grammar.Sym("stmt"),
		grammar.Symbols("if", "cond", "then", "skip"),
		grammar.Symbols("stmt"),
	)
	s.True(Recognize(g, grammar.Symbols("if", "cond", "then", "skip")))
	s.False(Recognize(g, grammar.Symbols("if", "cond", "then")))
}

func (s *RecognizerSuite) TestDeterminism() {
	r := New(arithmeticGrammar())
	word := grammar.Runes("(a+a)*a")
	first := r.Chart(word)
	for n_ := 0; n_ < 5; n_++ {
		again := r.Chart(word)
		s.Equal(first.Accepted(), again.Accepted())
		for i := 0; i < first.Len(); i++ {
			s.Equal(first.Set(i).Situations(), again.Set(i).Situations())
		}
	}
}

func (s *RecognizerSuite) TestIdempotentReRun() {
	r := New(balancedGrammar())
	s.True(r.Recognize(grammar.Runes("aabb")))
	s.False(r.Recognize(grammar.Runes("aab")))
	s.True(r.Recognize(grammar.Runes("ab")))

	c := r.Chart(grammar.Runes("ab"))
	s.Equal(3, c.Len())
	s.Equal(grammar.Runes("ab"), c.Word())
}

func (s *RecognizerSuite) TestMonotonicGrowth() {
	var sizes [][]int
	r := New(arithmeticGrammar(), WithObserver(func(c *Chart, pos, round int) {
		if round == 0 {
			sizes = append(sizes, nil)
		}
		sizes[pos] = append(sizes[pos], c.Set(pos).Len())
	}))
	r.Recognize(grammar.Runes("a+a*a"))

	s.Len(sizes, 6)
	for pos, rounds := range sizes {
		for i := 1; i < len(rounds); i++ {
			s.GreaterOrEqual(rounds[i], rounds[i-1], "position %d round %d", pos, i)
		}
	}
}

func (s *RecognizerSuite) TestPositionalLocality() {
	var settled []int
	lastPos := 0
	r := New(balancedGrammar(), WithObserver(func(c *Chart, pos, round int) {
		s.GreaterOrEqual(pos, lastPos, "positions never go back")
		if pos > lastPos {
			settled = append(settled, c.Set(lastPos).Len())
			lastPos = pos
		}
		for i, size := range settled {
			s.Equal(size, c.Set(i).Len(), "settled set %d changed while at %d", i, pos)
		}
	}))
	c := r.Chart(grammar.Runes("aabb"))
	s.Len(settled, 4)
	for i, size := range settled {
		s.Equal(size, c.Set(i).Len())
	}
}

func TestChart_ContainsExpectedSituations(t *testing.T) {
	g := balancedGrammar()
	c := New(g).Chart(grammar.Runes("ab"))

	start := NewSituation(g.StartRule(), 0, 0)
	require.True(t, c.Set(0).Contains(start))
	require.Equal(t, start, c.Set(0).Situations()[0], "seed comes first")
	require.True(t, c.Set(2).Contains(start.Advanced()))
	require.True(t, c.Accepted())

	rules := g.RulesFor(grammar.Sym("S"))
	require.True(t, c.Set(0).Contains(NewSituation(rules[0], 0, 0)))
	require.True(t, c.Set(1).Contains(NewSituation(rules[0], 1, 0)))
	require.True(t, c.Set(1).Contains(NewSituation(rules[0], 0, 1)), "predicted at 1")
}

func TestChart_StalledSetsRejectEarly(t *testing.T) {
	c := New(arithmeticGrammar()).Chart(grammar.Runes("+aa"))
	require.False(t, c.Accepted())
	require.Zero(t, c.Set(1).Len())
	require.Zero(t, c.Set(3).Len())
}
