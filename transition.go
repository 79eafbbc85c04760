package automaton

import (
	"cmp"
	"slices"
	"strings"
)

// Transition is an edge leaving a state. An empty Label is an epsilon transition.
type Transition struct {
	Label string
	Dest  int
}

// Edge is a transition together with its source, used to describe an automaton
// at construction time.
type Edge struct {
	From  int
	To    int
	Label string
}

// CompareTransitions orders transitions by label, then by destination.
// Epsilon transitions sort before every labeled transition.
func CompareTransitions(a, b Transition) int {
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return cmp.Compare(a.Dest, b.Dest)
}

// transitionSet holds the transitions leaving one state, sorted by
// CompareTransitions and without duplicates.
type transitionSet struct {
	items []Transition
}

func newTransitionSet() *transitionSet {
	return &transitionSet{}
}

// add inserts t and reports whether it was not already present.
func (s *transitionSet) add(t Transition) bool {
	i, found := slices.BinarySearchFunc(s.items, t, CompareTransitions)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, t)
	return true
}

// addAll inserts every transition of other.
func (s *transitionSet) addAll(other *transitionSet) {
	for _, t := range other.items {
		s.add(t)
	}
}

// remove deletes t and reports whether it was present.
func (s *transitionSet) remove(t Transition) bool {
	i, found := slices.BinarySearchFunc(s.items, t, CompareTransitions)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *transitionSet) contains(t Transition) bool {
	_, found := slices.BinarySearchFunc(s.items, t, CompareTransitions)
	return found
}

// hasLabel reports whether any transition carries label.
func (s *transitionSet) hasLabel(label string) bool {
	i, _ := slices.BinarySearchFunc(s.items, Transition{Label: label, Dest: -1}, CompareTransitions)
	return i < len(s.items) && s.items[i].Label == label
}

// split returns the epsilon transitions and the labeled transitions. Epsilon
// transitions always form a prefix of the set.
func (s *transitionSet) split() (epsilons, labeled []Transition) {
	i := 0
	for i < len(s.items) && s.items[i].Label == "" {
		i++
	}
	return s.items[:i], s.items[i:]
}

func (s *transitionSet) len() int {
	return len(s.items)
}

// all returns the transitions in order. The slice must not be modified.
func (s *transitionSet) all() []Transition {
	return s.items
}

func (s *transitionSet) clone() *transitionSet {
	return &transitionSet{items: slices.Clone(s.items)}
}

func (s *transitionSet) clear() {
	s.items = s.items[:0]
}
