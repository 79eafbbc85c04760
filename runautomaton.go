package automaton

import (
	"slices"
)

// RunAutomaton is a deterministic automaton compiled into a dense
// state x symbol table, for matching many words against one automaton.
type RunAutomaton struct {
	alphabet []string
	accept   []bool
	start    int

	// transitions[state*len(alphabet)+symbol] is the destination, or -1.
	transitions []int
}

// NewRunAutomaton compiles a determinized copy of a; a itself is left untouched.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	d := a.Clone()
	if err := d.Determinize(); err != nil {
		return nil, err
	}

	r := &RunAutomaton{
		alphabet:    d.alphabet,
		accept:      make([]bool, len(d.states)),
		start:       d.start,
		transitions: make([]int, len(d.states)*len(d.alphabet)),
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for s, state := range d.states {
		r.accept[s] = state.IsAccept
		for _, t := range d.transitions[s].all() {
			symbol, _ := slices.BinarySearch(r.alphabet, t.Label)
			r.transitions[s*len(r.alphabet)+symbol] = t.Dest
		}
	}
	return r, nil
}

// Size returns the number of states.
func (r *RunAutomaton) Size() int {
	return len(r.accept)
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return r.accept[state]
}

// Step Returns the destination of state on symbol, -1 if there is none.
func (r *RunAutomaton) Step(state int, symbol string) int {
	i, found := slices.BinarySearch(r.alphabet, symbol)
	if !found {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+i]
}

// Run Returns true if the given word is accepted.
func (r *RunAutomaton) Run(word string) bool {
	p := r.start
	for _, c := range word {
		p = r.Step(p, string(c))
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
