package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/grammarfile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/ebnf"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <grammar-file>",
		Short: "Load a grammar and report errors and undeclared symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()
			start := v.GetString("start")

			format, err := grammarFormat(v, path)
			if err != nil {
				return err
			}

			if format == grammarfile.EBNF {
				if err := verifyEBNF(path, start); err != nil {
					printErrors(out, err)
					return fmt.Errorf("check %s: failed", path)
				}
			}

			def, err := grammarfile.LoadFormat(path, format, start)
			if err != nil {
				printErrors(out, err)
				return fmt.Errorf("check %s: failed", path)
			}

			for _, u := range def.Undeclared() {
				fmt.Fprintf(out, "%s:%d: warning: symbol %q is neither a terminal nor a non-terminal\n", path, u.Line, u.Symbol)
			}
			fmt.Fprintf(out, "%s: %d rules, %d terminals, %d non-terminals, start %s\n",
				path, len(def.Rules), len(def.EffectiveTerminals()), len(def.EffectiveNonTerminals()), def.EffectiveStart())
			return nil
		},
	}

	cmd.Flags().String("start", "", "start symbol (overrides the grammar file; required for EBNF)")
	cmd.Flags().String("grammar-format", "", "grammar file format: text, yaml or ebnf (default from the file extension)")

	return cmd
}

// verifyEBNF checks that every production of an EBNF grammar is defined and
// reachable from start.
func verifyEBNF(path, start string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(path, f)
	if err != nil {
		return err
	}
	if start == "" {
		return nil
	}
	return ebnf.Verify(g, start)
}

func printErrors(w io.Writer, err error) {
	var syntax grammar.SyntaxErrors
	if errors.As(err, &syntax) {
		for _, e := range syntax {
			fmt.Fprintln(w, e)
		}
		return
	}

	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
