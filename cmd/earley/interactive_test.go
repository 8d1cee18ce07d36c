package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInteractive(t *testing.T) {
	input := strings.Join([]string{
		"3", "5", "6",
		"S", "T", "F",
		"a", "(", ")", "+", "*",
		"S->T+S", "S->T", "T->F*T", "T->F", "F->(S)", "F->a",
		"S",
		"4",
		"(a+a)*a", "a", "(a+a", "",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, runInteractive(strings.NewReader(input), &out, "Yes", "No"))

	assert.True(t, strings.HasSuffix(out.String(), "Number of words: Yes\nYes\nNo\nNo\n"))
	assert.True(t, strings.HasPrefix(out.String(), "Number of non-terminals: Number of terminals: "))
}

func TestRunInteractive_EmptyProduction(t *testing.T) {
	input := "1\n2\n2\nS\na\nb\nS->aSbS\nS->\nS\n3\n\naabb\nabb\n"

	var out bytes.Buffer
	require.NoError(t, runInteractive(strings.NewReader(input), &out, "+", "-"))
	assert.True(t, strings.HasSuffix(out.String(), "words: +\n+\n-\n"))
}

func TestRunInteractive_Errors(t *testing.T) {
	var out bytes.Buffer

	err := runInteractive(strings.NewReader("one\n"), &out, "Yes", "No")
	assert.ErrorContains(t, err, "non-negative number")

	err = runInteractive(strings.NewReader("1\n0\n1\nS\nS\n"), &out, "Yes", "No")
	assert.Error(t, err, "rule without arrow")

	err = runInteractive(strings.NewReader("1\n1\n"), &out, "Yes", "No")
	assert.ErrorIs(t, err, errUnexpectedEOF)
}
