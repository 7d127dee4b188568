package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/parsnip/grammar"
	"github.com/zostay/parsnip/match"
	"github.com/zostay/parsnip/parse"
)

func newMatchCmd() *cobra.Command {
	var grammarFile string
	var ruleName string
	var traceOn bool

	cmd := &cobra.Command{
		Use:   "match <input>",
		Short: "Match input text against a grammar",
		Long: "Match applies a YAML grammar to the given input text and prints the\n" +
			"matched value followed by any unconsumed remainder. Pass - to read the\n" +
			"input from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if input == "-" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			}

			g, err := grammar.LoadFile(grammarFile)
			if err != nil {
				return err
			}

			var p parse.Parser
			name := ruleName
			if name == "" {
				name = g.Start
				p, err = g.Build()
			} else {
				p, err = g.Rule(name)
			}
			if err != nil {
				return err
			}

			if traceOn {
				tracer := log.New(os.Stderr, "", 0)
				p = match.Traced(name, tracer.Println, p)
			}

			r := p.Parse(input)
			if !r.OK {
				return fmt.Errorf("expected %q at %q", r.Expected, r.Remaining)
			}

			fmt.Println(r.Value)
			if r.Remaining != "" {
				fmt.Fprintf(os.Stderr, "unconsumed: %q\n", r.Remaining)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "grammar.yaml", "grammar file to match against")
	cmd.Flags().StringVarP(&ruleName, "rule", "r", "", "rule to start from (default: the grammar's start rule)")
	cmd.Flags().BoolVar(&traceOn, "trace", false, "trace parser applications to stderr")

	return cmd
}
