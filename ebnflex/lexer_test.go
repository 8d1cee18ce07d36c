package ebnflex

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
)

const arith = `
Number = digit { digit } .
Float  = digit { digit } [ "." digit { digit } ] "f" .
Ident  = letter { letter | digit } .
Plus   = "+" .
Times  = "*" .
LParen = "(" .
RParen = ")" .
digit  = "0" … "9" .
letter = "a" … "z" | "é" .
`

func newLexer(t *testing.T) *Lexer {
	t.Helper()
	l, err := Read("arith.ebnf", strings.NewReader(arith))
	require.NoError(t, err)
	return l
}

func kinds(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"Float", "Ident", "LParen", "Number", "Plus", "RParen", "Times"}, newLexer(t).Tokens())
}

func TestTokenize(t *testing.T) {
	tokens, err := newLexer(t).Tokenize("12 + x1*(y)")
	require.NoError(t, err)

	assert.Equal(t, []string{"Number", "Plus", "Ident", "Times", "LParen", "Ident", "RParen"}, kinds(tokens))
	assert.Equal(t, Token{Kind: "Ident", Text: "x1", Offset: 5}, tokens[2])
}

func TestTokenize_LongestMatch(t *testing.T) {
	tokens, err := newLexer(t).Tokenize("3.25f 3 1f")
	require.NoError(t, err)

	assert.Equal(t, []string{"Float", "Number", "Float"}, kinds(tokens))
	assert.Equal(t, "3.25f", tokens[0].Text)
	assert.Equal(t, "1f", tokens[2].Text, "optional fraction may be absent")
}

func TestTokenize_Unicode(t *testing.T) {
	tokens, err := newLexer(t).Tokenize("café")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "café", tokens[0].Text)
}

func TestTokenize_Error(t *testing.T) {
	tokens, err := newLexer(t).Tokenize("12 $")
	require.Error(t, err)

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 3, lexErr.Offset)
	assert.Equal(t, '$', lexErr.Rune)
	assert.Len(t, tokens, 1, "tokens before the error are returned")
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := newLexer(t).Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestWord_Recognize(t *testing.T) {
	rules := []grammar.Rule{
		grammar.NewRule(grammar.Sym("E"), grammar.Symbols("E", "Plus", "T")...),
		grammar.NewRule(grammar.Sym("E"), grammar.Sym("T")),
		grammar.NewRule(grammar.Sym("T"), grammar.Symbols("T", "Times", "F")...),
		grammar.NewRule(grammar.Sym("T"), grammar.Sym("F")),
		grammar.NewRule(grammar.Sym("F"), grammar.Symbols("LParen", "E", "RParen")...),
		grammar.NewRule(grammar.Sym("F"), grammar.Sym("Number")),
		grammar.NewRule(grammar.Sym("F"), grammar.Sym("Ident")),
	}
	l := newLexer(t)
	g := grammar.New(rules, grammar.Sym("E"), grammar.Symbols(l.Tokens()...), grammar.Symbols("E", "T", "F"))
	r := earley.New(g)

	for input, want := range map[string]bool{
		"12 + x1*(y)": true,
		"(a+b)*c":     true,
		"a+":          false,
		"1.5f":        false,
	} {
		word, err := l.Word(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, r.Recognize(word), input)
	}
}

func TestTokenize_NullableProduction(t *testing.T) {
	l, err := Read("signed.ebnf", strings.NewReader(`
Num   = sign digit { digit } .
Label = name ":" .
sign  = [ "-" ] .
name  = empty | "x" .
empty = .
digit = "0" … "9" .
`))
	require.NoError(t, err)

	tokens, err := l.Tokenize("-5 5 42 : x:")
	require.NoError(t, err)
	assert.Equal(t, []string{"Num", "Num", "Num", "Label", "Label"}, kinds(tokens))
	assert.Equal(t, "5", tokens[1].Text)
	assert.Equal(t, "x:", tokens[4].Text)
}

func TestTokenize_RecursiveProductionIsNotNullable(t *testing.T) {
	l, err := Read("loop.ebnf", strings.NewReader(`
Tok  = loop "!" .
loop = loop "a" .
`))
	require.NoError(t, err)

	_, err = l.Tokenize("!")
	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 0, lexErr.Offset)
}
