package automaton

import (
	"fmt"
	"slices"
)

// RefinementTrace records how Minimize refined the partition of states, for
// reporting.
type RefinementTrace struct {
	Alphabet []string
	Rows     []RefinementRow
}

// RefinementRow is the history of one state of the completed automaton.
type RefinementRow struct {
	State   string
	Accept  bool
	Initial int
	Rounds  []RefinementStep
}

// RefinementStep is one round for one state: the previous-round class of the
// destination on each symbol (in alphabet order) and the class assigned.
type RefinementStep struct {
	Destinations []int
	Class        int
}

// Minimize
// Minimizes the automaton with Moore's partition refinement, completing (and so
// determinizing) it first. States of one class are merged into the first of them.
// Fails with ErrTooManyStates if the automaton has more than MaxStates states.
func (a *Automaton) Minimize() error {
	_, err := a.minimize(false)
	return err
}

// MinimizeWithTrace is Minimize that also reports every refinement round. The
// trace is nil if the automaton was already minimal.
func (a *Automaton) MinimizeWithTrace() (*RefinementTrace, error) {
	return a.minimize(true)
}

func (a *Automaton) minimize(withTrace bool) (*RefinementTrace, error) {
	if a.stage >= StageMinimal {
		return nil, nil
	}
	if len(a.states) > MaxStates {
		return nil, fmt.Errorf("minimize %d states (max %d): %w", len(a.states), MaxStates, ErrTooManyStates)
	}
	if err := a.Complete(); err != nil {
		return nil, err
	}

	var trace *RefinementTrace
	if withTrace {
		trace = a.newRefinementTrace()
	}
	classes := a.refinePartition(trace)

	a.replaceWith(a.mergeClasses(classes), StageMinimal)
	a.logStage("minimize")
	return trace, nil
}

// refinePartition returns the class of every state once the partition is stable.
// Classes are numbered in order of their first state.
func (a *Automaton) refinePartition(trace *RefinementTrace) []int {
	numStates := len(a.states)

	current := make([]int, numStates)
	for s, state := range a.states {
		if state.IsAccept {
			current[s] = 1
		}
	}
	if trace != nil {
		for s := range trace.Rows {
			trace.Rows[s].Initial = current[s]
		}
	}

	round := newPartitionRound(numStates)
	var previous []int
	for !slices.Equal(previous, current) {
		previous = current
		current = make([]int, numStates)
		round.reset()

		for s := 0; s < numStates; s++ {
			key := make([]int, 0, 1+a.transitions[s].len())
			key = append(key, previous[s])
			for _, t := range a.transitions[s].all() {
				key = append(key, previous[t.Dest])
			}
			current[s] = round.classOf(newPartitionKey(key))

			if trace != nil {
				trace.Rows[s].Rounds = append(trace.Rows[s].Rounds, RefinementStep{
					Destinations: key[1:],
					Class:        current[s],
				})
			}
		}
	}

	return current
}

func (a *Automaton) mergeClasses(classes []int) *Automaton {
	b := a.derive()
	for s, state := range a.states {
		class := classes[s]
		if class == len(b.states) {
			b.addState(state.Name, state.IsStart, state.IsAccept)
			for _, t := range a.transitions[s].all() {
				b.addTransition(class, classes[t.Dest], t.Label)
			}
		} else {
			b.states[class].Merge(state)
		}
	}
	b.start = classes[a.start]
	return b
}

func (a *Automaton) newRefinementTrace() *RefinementTrace {
	trace := &RefinementTrace{
		Alphabet: slices.Clone(a.alphabet),
		Rows:     make([]RefinementRow, len(a.states)),
	}
	for s, state := range a.states {
		trace.Rows[s] = RefinementRow{State: state.Name, Accept: state.IsAccept}
	}
	return trace
}
