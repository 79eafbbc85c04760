package main

import (
	"fmt"

	automaton "github.com/geange/automata"
	"github.com/spf13/cobra"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run an automaton through the transformation pipeline",
	Long: `Builds the automaton and transforms it up to the requested stage
(raw, single-letter, deterministic, complete or minimal), then prints it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stageName, _ := cmd.Flags().GetString("stage")
		withTrace, _ := cmd.Flags().GetBool("trace")

		stage, err := automaton.ParseStage(stageName)
		if err != nil {
			return err
		}
		a, err := loadAutomaton(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var trace *automaton.RefinementTrace
		if withTrace && stage == automaton.StageMinimal {
			trace, err = a.MinimizeWithTrace()
		} else {
			err = a.Advance(stage)
		}
		if err != nil {
			return err
		}

		if _, err := a.WriteTo(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := renderTransitions(out, a); err != nil {
			return err
		}
		if withTrace && stage == automaton.StageMinimal {
			fmt.Fprintln(out)
			return renderTrace(out, trace)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pipelineCmd)
	addSourceFlags(pipelineCmd)
	pipelineCmd.Flags().StringP("stage", "s", automaton.StageMinimal.String(), "Stage to reach")
	pipelineCmd.Flags().Bool("trace", false, "Print the minimization refinement rounds")
}
