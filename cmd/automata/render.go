package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	automaton "github.com/geange/automata"
	"github.com/olekukonko/tablewriter"
)

// renderTransitions writes one row per state and one column per label; a cell
// lists the destinations of the state on that label.
func renderTransitions(w io.Writer, a *automaton.Automaton) error {
	labels := make([]string, 0)
	for state := 0; state < a.StateCount(); state++ {
		for _, t := range a.Transitions(state) {
			if i, found := slices.BinarySearch(labels, t.Label); !found {
				labels = slices.Insert(labels, i, t.Label)
			}
		}
	}

	header := []string{"#", "State", "Flags"}
	for _, label := range labels {
		header = append(header, automaton.LabelString(label))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)

	for state, s := range a.States() {
		byLabel := make(map[string][]string)
		for _, t := range a.Transitions(state) {
			byLabel[t.Label] = append(byLabel[t.Label], strconv.Itoa(t.Dest))
		}

		row := []string{strconv.Itoa(state), s.Name, flags(s)}
		for _, label := range labels {
			row = append(row, strings.Join(byLabel[label], ","))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func flags(s automaton.State) string {
	var parts []string
	if s.IsStart {
		parts = append(parts, "start")
	}
	if s.IsAccept {
		parts = append(parts, "accept")
	}
	return strings.Join(parts, " ")
}

// renderTrace writes the class of every state after each refinement round,
// with the classes of its destinations that produced it.
func renderTrace(w io.Writer, trace *automaton.RefinementTrace) error {
	if trace == nil {
		_, err := fmt.Fprintln(w, "already minimal")
		return err
	}

	rounds := 0
	for _, row := range trace.Rows {
		rounds = max(rounds, len(row.Rounds))
	}

	header := []string{"State", "Accept", "Initial"}
	for i := 1; i <= rounds; i++ {
		header = append(header, fmt.Sprintf("Round %d (%s)", i, strings.Join(trace.Alphabet, " ")))
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)

	for _, row := range trace.Rows {
		cells := []string{row.State, strconv.FormatBool(row.Accept), strconv.Itoa(row.Initial)}
		for _, step := range row.Rounds {
			cells = append(cells, fmt.Sprintf("%v -> %d", step.Destinations, step.Class))
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}
