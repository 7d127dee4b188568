package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/parsnip/grammar"
)

func newCheckCmd() *cobra.Command {
	var grammarFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a grammar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.LoadFile(grammarFile)
			if err != nil {
				return err
			}

			if _, err := g.Build(); err != nil {
				return fmt.Errorf("%s: %w", grammarFile, err)
			}

			fmt.Printf("%s: ok (%d rules, start %q)\n", grammarFile, len(g.Rules), g.Start)
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "grammar.yaml", "grammar file to validate")

	return cmd
}
