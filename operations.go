package automaton

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
)

// MakeOneLetter Rewrites the automaton so that every transition carries exactly one
// symbol. Transitions with longer labels are replaced by chains through fresh
// states; epsilon transitions are then removed by copying, into every state, the
// labeled transitions reachable through epsilon moves. A state becomes accepting
// if it reaches an accept state through epsilon moves.
func (a *Automaton) MakeOneLetter() {
	if a.stage >= StageSingleLetter {
		return
	}
	a.replaceWith(a.singleLetterForm(), StageSingleLetter)
	a.logStage("make one letter")
}

// singleLetterForm computes the result of MakeOneLetter without touching a.
func (a *Automaton) singleLetterForm() *Automaton {
	b := a.Clone()
	b.splitLongLabels()
	b.removeEpsilonTransitions()
	b.recalcAlphabet()
	return b
}

func (a *Automaton) splitLongLabels() {
	originalStates := len(a.states)
	for state := 0; state < originalStates; state++ {
		long := make([]Transition, 0)
		for _, t := range a.transitions[state].all() {
			if utf8.RuneCountInString(t.Label) > 1 {
				long = append(long, t)
			}
		}

		for _, t := range long {
			a.deleteTransition(state, t)
			symbols := splitSymbols(t.Label)
			last := state
			for i, symbol := range symbols {
				next := t.Dest
				if i+1 < len(symbols) {
					next = a.addNumberedState(false, false)
				}
				a.addTransition(last, next, symbol)
				last = next
			}
		}
	}
}

func (a *Automaton) removeEpsilonTransitions() {
	old := a.transitions
	a.transitions = make([]*transitionSet, len(old))

	visited := bitset.New(uint(len(old)))
	for state := range old {
		a.transitions[state] = newTransitionSet()
		visited.ClearAll()

		workList := []int{state}
		for len(workList) > 0 {
			s := workList[0]
			workList = workList[1:]
			if visited.Test(uint(s)) {
				continue
			}
			visited.Set(uint(s))

			epsilons, labeled := old[s].split()
			for _, t := range labeled {
				a.transitions[state].add(t)
			}
			for _, t := range epsilons {
				workList = append(workList, t.Dest)
				if a.states[t.Dest].IsAccept {
					a.states[state].MakeAccept()
				}
			}
		}
	}
}

// Determinize Turns the automaton into an equivalent deterministic one by subset
// construction, first running MakeOneLetter if needed. Only subsets reachable from
// the start state become states. Fails with ErrTooManyStates if the automaton has
// more than MaxStates states, before or after splitting its labels, even when it
// is already deterministic.
func (a *Automaton) Determinize() error {
	if len(a.states) > MaxStates {
		return fmt.Errorf("determinize %d states (max %d): %w", len(a.states), MaxStates, ErrTooManyStates)
	}
	if a.stage >= StageDeterministic {
		return nil
	}

	if a.stage < StageSingleLetter {
		b := a.singleLetterForm()
		if len(b.states) > MaxStates {
			return fmt.Errorf("determinize %d states after splitting labels (max %d): %w",
				len(b.states), MaxStates, ErrTooManyStates)
		}
		a.replaceWith(b, StageSingleLetter)
		a.logStage("make one letter")
	}

	a.replaceWith(subsetConstruction(a), StageDeterministic)
	a.logStage("determinize")
	return nil
}

func subsetConstruction(a *Automaton) *Automaton {
	numStates := len(a.states)

	// Destinations of every state, per symbol.
	bySymbol := make([]map[string]StateSet, numStates)
	for s := 0; s < numStates; s++ {
		bySymbol[s] = make(map[string]StateSet)
		for _, t := range a.transitions[s].all() {
			dest := SingletonStateSet(t.Dest, false, a.states[t.Dest].IsAccept)
			bySymbol[s][t.Label] = bySymbol[s][t.Label].Union(dest)
		}
	}

	b := a.derive()
	index := NewHashMap[int](WithCapacity(numStates))

	initial := SingletonStateSet(a.start, true, a.states[a.start].IsAccept)
	b.start = b.addState(subsetName(a, initial), true, initial.IsAccept())
	index.Set(initial, b.start)

	workList := []StateSet{initial}
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		from, _ := index.Get(current)
		members := current.Members()

		for _, symbol := range a.alphabet {
			var next StateSet
			for _, m := range members {
				next = next.Union(bySymbol[m][symbol])
			}
			if next.Empty() {
				continue
			}

			to, ok := index.Get(next)
			if !ok {
				to = b.addState(subsetName(a, next), false, next.IsAccept())
				index.Set(next, to)
				workList = append(workList, next)
			}
			b.addTransition(from, to, symbol)
		}
	}

	return b
}

// subsetName joins the names of the members of set.
func subsetName(a *Automaton, set StateSet) string {
	members := set.Members()
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = a.states[m].Name
	}
	return strings.Join(names, ",")
}

// Complete Adds a non-accepting drain state and routes to it every (state, symbol)
// pair without a transition, so that the transition function becomes total.
// Determinizes first if needed. Does nothing to an automaton that is already total.
func (a *Automaton) Complete() error {
	if a.stage >= StageComplete {
		return nil
	}
	if a.stage < StageDeterministic {
		if err := a.Determinize(); err != nil {
			return err
		}
	}

	if !a.isTotal() {
		drain := a.addState("drain", false, false)
		for state := range a.states {
			for _, symbol := range a.alphabet {
				if !a.hasTransitionOnLabel(state, symbol) {
					a.addTransition(state, drain, symbol)
				}
			}
		}
	}

	a.stage = StageComplete
	a.logStage("complete")
	return nil
}

func (a *Automaton) isTotal() bool {
	for _, ts := range a.transitions {
		if ts.len() != len(a.alphabet) {
			return false
		}
	}
	return true
}

// RemoveUnreachable Drops the transitions of every state that cannot be reached from
// the start state. States keep their indices.
func (a *Automaton) RemoveUnreachable() {
	live := a.liveStatesFromStart()
	for state := range a.transitions {
		if !live.Test(uint(state)) {
			a.transitions[state].clear()
		}
	}
}

func (a *Automaton) liveStatesFromStart() *bitset.BitSet {
	live := bitset.New(uint(len(a.states)))
	live.Set(uint(a.start))
	workList := []int{a.start}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, t := range a.transitions[s].all() {
			if !live.Test(uint(t.Dest)) {
				live.Set(uint(t.Dest))
				workList = append(workList, t.Dest)
			}
		}
	}

	return live
}
