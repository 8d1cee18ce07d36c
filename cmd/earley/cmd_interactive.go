package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errUnexpectedEOF = errors.New("unexpected end of input")

func newInteractiveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter a grammar and words at prompts",
		Long: `Enter a grammar and words at prompts: the number of non-terminals,
terminals and rules, then the symbols one per line, the rules in LEFT->RIGHT
notation, the start symbol, the number of words and finally the words.
Every word is answered as soon as it is entered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), v.GetString("yes"), v.GetString("no"))
		},
	}

	cmd.Flags().String("yes", "Yes", "text printed for accepted words")
	cmd.Flags().String("no", "No", "text printed for rejected words")

	return cmd
}

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (p *prompter) line() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errUnexpectedEOF
	}
	return p.sc.Text(), nil
}

func (p *prompter) count(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	s, err := p.line()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s want a non-negative number, got %q", strings.TrimSpace(prompt), s)
	}
	return n, nil
}

func (p *prompter) symbols(prompt string, n int) ([]grammar.Symbol, error) {
	fmt.Fprintln(p.out, prompt)
	out := make([]grammar.Symbol, 0, n)
	for n_ := 0; n_ < n; n_++ {
		s, err := p.line()
		if err != nil {
			return nil, err
		}
		out = append(out, grammar.Sym(strings.TrimSpace(s)))
	}
	return out, nil
}

func runInteractive(in io.Reader, out io.Writer, yes, no string) error {
	p := &prompter{sc: bufio.NewScanner(in), out: out}

	nNonTerminals, err := p.count("Number of non-terminals: ")
	if err != nil {
		return err
	}
	nTerminals, err := p.count("Number of terminals: ")
	if err != nil {
		return err
	}
	nRules, err := p.count("Number of rules: ")
	if err != nil {
		return err
	}

	nonTerminals, err := p.symbols("Non-terminals:", nNonTerminals)
	if err != nil {
		return err
	}
	terminals, err := p.symbols("Terminals:", nTerminals)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Rules:")
	rules := make([]grammar.Rule, 0, nRules)
	for n_ := 0; n_ < nRules; n_++ {
		s, err := p.line()
		if err != nil {
			return err
		}
		rule, err := grammar.ParseRule(s)
		if err != nil {
			return err
		}
		rules = append(rules, rule)
	}

	start, err := p.symbols("Start symbol:", 1)
	if err != nil {
		return err
	}

	r := earley.New(grammar.New(rules, start[0], terminals, nonTerminals))

	nWords, err := p.count("Number of words: ")
	if err != nil {
		return err
	}
	for n_ := 0; n_ < nWords; n_++ {
		word, err := p.line()
		if err != nil {
			return err
		}
		if r.Recognize(grammar.Runes(word)) {
			fmt.Fprintln(out, yes)
		} else {
			fmt.Fprintln(out, no)
		}
	}
	return nil
}
