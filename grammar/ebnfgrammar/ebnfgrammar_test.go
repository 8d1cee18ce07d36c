package ebnfgrammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
)

func load(t *testing.T, src, start string) *grammar.Grammar {
	t.Helper()
	def, err := Parse("test.ebnf", strings.NewReader(src), start)
	require.NoError(t, err)
	return def.Grammar()
}

func TestConvert_Expressions(t *testing.T) {
	g := load(t, `
		Expr = Term { ( "+" | "-" ) Term } .
		Term = "a" | "(" Expr ")" .
	`, "Expr")

	r := earley.New(g)
	for word, want := range map[string]bool{
		"a":             true,
		"a + a - a":     true,
		"( a - a ) + a": true,
		"a +":           false,
		"( a":           false,
		"":              false,
	} {
		assert.Equal(t, want, r.Recognize(grammar.Symbols(strings.Fields(word)...)), "word %q", word)
	}
}

func TestConvert_RangesAndOptions(t *testing.T) {
	g := load(t, `
		Number = [ "-" ] digit { digit } .
		digit  = "0" … "9" .
	`, "Number")

	r := earley.New(g)
	assert.True(t, r.Recognize(grammar.Runes("42")))
	assert.True(t, r.Recognize(grammar.Runes("-7")))
	assert.False(t, r.Recognize(grammar.Runes("--7")))
	assert.False(t, r.Recognize(grammar.Runes("-")))
	assert.False(t, r.Recognize(grammar.Runes("4a")))

	assert.True(t, g.IsTerminal(grammar.Sym("5")))
	assert.True(t, g.IsNonTerminal(grammar.Sym("digit")))
}

func TestConvert_MultiRuneTokens(t *testing.T) {
	g := load(t, `
		Stmt = "if" Cond "then" Stmt [ "else" Stmt ] | "skip" .
		Cond = "x" .
	`, "Stmt")

	r := earley.New(g)
	assert.True(t, r.Recognize(grammar.Symbols("if", "x", "then", "skip")))
	assert.True(t, r.Recognize(grammar.Symbols("if", "x", "then", "skip", "else", "skip")))
	assert.False(t, r.Recognize(grammar.Symbols("if", "x", "skip")))
}

func TestConvert_AuxiliaryNames(t *testing.T) {
	def, err := Parse("test.ebnf", strings.NewReader(`List = "x" { "," "x" } .`), "List")
	require.NoError(t, err)

	assert.Contains(t, def.NonTerminals, grammar.Sym("List#1"))
	assert.Equal(t, grammar.Sym("List"), def.EffectiveStart())
	for _, line := range def.Lines {
		assert.Equal(t, 1, line)
	}
	assert.Empty(t, def.Undeclared())
}

func TestConvert_EmptyProduction(t *testing.T) {
	g := load(t, `
		S = "a" Rest .
		Rest = .
	`, "S")
	assert.True(t, earley.Recognize(g, grammar.Runes("a")))
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("bad.ebnf", strings.NewReader(`S = "a" `), "S")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse grammar")
}

func TestConvert_LiteralSpelledLikeProduction(t *testing.T) {
	def, err := Parse("test.ebnf", strings.NewReader(`
		expr = "(" expr ")" | "x" .
		x = "y" .
	`), "expr")
	require.NoError(t, err)
	g := def.Grammar()

	assert.True(t, g.IsTerminal(grammar.Sym("x")))
	assert.False(t, g.IsNonTerminal(grammar.Sym("x")))
	assert.True(t, g.IsNonTerminal(grammar.Sym("x#0")))
	assert.Equal(t, grammar.Sym("expr"), g.UserStart())

	r := earley.New(g)
	assert.True(t, r.Recognize(grammar.Symbols("x")))
	assert.True(t, r.Recognize(grammar.Symbols("(", "(", "x", ")", ")")))
	assert.False(t, r.Recognize(grammar.Symbols("y")))
}

func TestConvert_RenamedStart(t *testing.T) {
	def, err := Parse("test.ebnf", strings.NewReader(`
		x = "x" x | "y" .
	`), "x")
	require.NoError(t, err)
	g := def.Grammar()

	assert.Equal(t, grammar.Sym("x#0"), g.UserStart())
	r := earley.New(g)
	assert.True(t, r.Recognize(grammar.Symbols("x", "x", "y")))
	assert.False(t, r.Recognize(grammar.Symbols("x")))
}
