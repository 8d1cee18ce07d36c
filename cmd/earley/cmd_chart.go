package main

import (
	"fmt"

	"github.com/dhamidi/earley/earley"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newChartCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart <grammar-file> <word>",
		Short: "Dump every situation set built while recognizing a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, tokenize, err := loadGrammar(v, args[0])
			if err != nil {
				return err
			}
			word, err := tokenize(args[1])
			if err != nil {
				return fmt.Errorf("word %q: %w", args[1], err)
			}

			chart := earley.New(g).Chart(word)

			enc, err := newEncoder(v, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := enc.EncodeChart(chart); err != nil {
				return fmt.Errorf("encode chart: %w", err)
			}
			return nil
		},
	}

	addGrammarFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}
