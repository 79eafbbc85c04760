package main

import (
	"fmt"

	automaton "github.com/geange/automata"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match WORD...",
	Short: "Check which words the automaton accepts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}
		r, err := automaton.NewRunAutomaton(a)
		if err != nil {
			return err
		}

		for _, word := range args {
			verdict := "reject"
			if r.Run(word) {
				verdict = "accept"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", word, verdict)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	addSourceFlags(matchCmd)
}
