package automaton

import (
	"fmt"
	"io"
	"strings"
)

// String dumps the alphabet, states and transitions as plain text.
func (a *Automaton) String() string {
	var sb strings.Builder

	sb.WriteString("Alphabet:\n|")
	for _, symbol := range a.alphabet {
		sb.WriteString(" " + symbol + " |")
	}

	sb.WriteString("\n\nStates:\n")
	for i, s := range a.states {
		fmt.Fprintf(&sb, "%d %s", i, s.Name)
		if s.IsStart {
			sb.WriteString(" start")
		}
		if s.IsAccept {
			sb.WriteString(" accept")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\nTransitions:\n")
	for i, ts := range a.transitions {
		for _, t := range ts.all() {
			fmt.Fprintf(&sb, "%d -> %d %s\n", i, t.Dest, LabelString(t.Label))
		}
	}
	return sb.String()
}

// WriteTo writes the dump produced by String to w.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// LabelString renders a transition label, spelling out epsilon.
func LabelString(label string) string {
	if label == "" {
		return "#eps#"
	}
	return label
}
