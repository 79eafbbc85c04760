package main

import (
	"fmt"

	automaton "github.com/geange/automata"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Count how many times a word can be read in a row",
	Long: `Prints the longest number of consecutive readings of --word along the
automaton, or "infinite" if the word can be chained forever.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		word, _ := cmd.Flags().GetString("word")

		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}

		length := a.SolveForWord(word)
		if length == automaton.Infinite {
			fmt.Fprintln(cmd.OutOrStdout(), "infinite")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), length)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainCmd)
	addSourceFlags(chainCmd)
	chainCmd.Flags().StringP("word", "w", "", "Word to chain")
	_ = chainCmd.MarkFlagRequired("word")
}
