package main

import (
	"errors"
	"fmt"
	"os"

	automaton "github.com/geange/automata"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Definition is an explicit automaton as written in a YAML file.
type Definition struct {
	States      []StateDefinition      `yaml:"states"`
	Transitions []TransitionDefinition `yaml:"transitions"`
}

type StateDefinition struct {
	Name   string `yaml:"name"`
	Start  bool   `yaml:"start"`
	Accept bool   `yaml:"accept"`
}

// TransitionDefinition refers to states by their position in the states list.
// An empty label is an epsilon transition.
type TransitionDefinition struct {
	From  int    `yaml:"from"`
	To    int    `yaml:"to"`
	Label string `yaml:"label"`
}

// ParseDefinition decodes a YAML definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if len(def.States) == 0 {
		return nil, errors.New("definition has no states")
	}
	return &def, nil
}

// Build creates the automaton described by def.
func (def *Definition) Build(opts ...automaton.Option) (*automaton.Automaton, error) {
	states := make([]automaton.State, len(def.States))
	for i, s := range def.States {
		states[i] = automaton.NewState(s.Name, s.Start, s.Accept)
	}
	edges := make([]automaton.Edge, len(def.Transitions))
	for i, t := range def.Transitions {
		edges[i] = automaton.Edge{From: t.From, To: t.To, Label: t.Label}
	}
	return automaton.NewAutomaton(states, edges, opts...)
}

// addSourceFlags registers the flags naming where an automaton comes from.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "YAML definition of the automaton")
	cmd.Flags().StringP("postfix", "p", "", "Regular expression in postfix notation")
	cmd.MarkFlagsMutuallyExclusive("file", "postfix")
	cmd.MarkFlagsOneRequired("file", "postfix")
}

// loadAutomaton builds the automaton named by the --file or --postfix flag.
func loadAutomaton(cmd *cobra.Command) (*automaton.Automaton, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	opts := []automaton.Option{automaton.WithLogger(logger)}

	if expr, _ := cmd.Flags().GetString("postfix"); cmd.Flags().Changed("postfix") {
		return automaton.NewAutomatonFromPostfix(expr, opts...)
	}

	path, _ := cmd.Flags().GetString("file")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a, err := def.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
