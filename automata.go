package automaton

import "strconv"

// Automata builds small automata for common languages.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	a := newAutomaton()
	a.start = a.addState("0", true, false)
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := newAutomaton()
	a.start = a.addState("0", true, true)
	return a
}

// MakeString
// Returns a new (deterministic) automaton that accepts only s.
func (*Automata) MakeString(s string) *Automaton {
	a := newAutomaton()
	a.start = a.addState("0", true, false)
	last := a.start
	for _, symbol := range splitSymbols(s) {
		next := a.addState(strconv.Itoa(len(a.states)), false, false)
		a.addTransition(last, next, symbol)
		last = next
	}
	a.states[last].MakeAccept()
	a.recalcAlphabet()
	return a
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the
// symbols of alphabet.
func (*Automata) MakeAnyString(alphabet string) *Automaton {
	a := newAutomaton()
	a.start = a.addState("0", true, true)
	for _, symbol := range splitSymbols(alphabet) {
		a.addTransition(a.start, a.start, symbol)
	}
	a.recalcAlphabet()
	return a
}
