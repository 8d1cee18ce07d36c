package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/ebnflex"
	"github.com/dhamidi/earley/format"
	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/grammarfile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRecognizeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recognize <grammar-file> [word...]",
		Short: "Answer whether each word belongs to the language of a grammar",
		Long: `Answer whether each word belongs to the language of a grammar.

Words are taken from the arguments or, when there are none, one per line
from standard input. An empty line is the empty word.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			g, tokenize, err := loadGrammar(v, path)
			if err != nil {
				return err
			}

			lines := args[1:]
			if len(lines) == 0 {
				lines, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			words := make([][]grammar.Symbol, len(lines))
			for i, line := range lines {
				if words[i], err = tokenize(line); err != nil {
					return fmt.Errorf("word %q: %w", line, err)
				}
			}

			results, err := earley.New(g).RecognizeAll(cmd.Context(), words, v.GetInt("workers"))
			if err != nil {
				return fmt.Errorf("recognize: %w", err)
			}

			enc, err := newEncoder(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for i, ok := range results {
				if err := enc.Encode(format.Result{Word: lines[i], Accepted: ok}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	addGrammarFlags(cmd)
	addOutputFlags(cmd)
	cmd.Flags().Int("workers", 0, "recognize this many words in parallel (0 means one per CPU)")

	return cmd
}

func addGrammarFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "start symbol (overrides the grammar file; required for EBNF)")
	cmd.Flags().String("split", "", "how words are cut into symbols: chars or fields (default depends on the grammar format)")
	cmd.Flags().String("lexer", "", "EBNF file whose upper-case productions cut words into tokens (overrides --split)")
	cmd.Flags().String("grammar-format", "", "grammar file format: text, yaml or ebnf (default from the file extension)")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	cmd.Flags().String("yes", "Yes", "text printed for accepted words")
	cmd.Flags().String("no", "No", "text printed for rejected words")
	cmd.Flags().Bool("show-word", false, "print each word before its answer")
}

// tokenizer cuts one line of input into terminal symbols.
type tokenizer func(line string) ([]grammar.Symbol, error)

// loadGrammar loads the grammar in path and picks how its words are cut
// into symbols.
func loadGrammar(v *viper.Viper, path string) (*grammar.Grammar, tokenizer, error) {
	def, format, err := loadDefinition(v, path)
	if err != nil {
		return nil, nil, err
	}

	if name := v.GetString("lexer"); name != "" {
		l, err := ebnflex.Load(name)
		if err != nil {
			return nil, nil, err
		}
		def.Terminals = append(def.EffectiveTerminals(), grammar.Symbols(l.Tokens()...)...)
		return def.Grammar(), l.Word, nil
	}

	split := grammarfile.DefaultSplit(format)
	if name := v.GetString("split"); name != "" {
		split, err = grammarfile.ParseSplit(name)
		if err != nil {
			return nil, nil, err
		}
	}
	return def.Grammar(), func(line string) ([]grammar.Symbol, error) {
		return split.Word(line), nil
	}, nil
}

// grammarFormat returns the format named by --grammar-format, or the one
// implied by the extension of path.
func grammarFormat(v *viper.Viper, path string) (grammarfile.Format, error) {
	if name := v.GetString("grammar-format"); name != "" {
		return grammarfile.ParseFormat(name)
	}
	return grammarfile.FormatOf(path), nil
}

// loadDefinition reads the grammar in path in the format picked by
// grammarFormat.
func loadDefinition(v *viper.Viper, path string) (*grammar.Definition, grammarfile.Format, error) {
	format, err := grammarFormat(v, path)
	if err != nil {
		return nil, 0, err
	}

	def, err := grammarfile.LoadFormat(path, format, v.GetString("start"))
	if err != nil {
		return nil, 0, err
	}
	return def, format, nil
}

func newEncoder(v *viper.Viper, w io.Writer) (format.Encoder, error) {
	return format.NewEncoder(v.GetString("format"), w, format.TextOptions{
		Yes:      v.GetString("yes"),
		No:       v.GetString("no"),
		ShowWord: v.GetBool("show-word"),
	})
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return lines, nil
}
