package automaton

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
)

// ErrNoStartState is returned when no state is flagged as start.
var ErrNoStartState = errors.New("automaton has no start state")

// Automaton Represents a finite automaton: its states, the transitions leaving each
// state, the alphabet derived from the transition labels and the single start state.
// States are addressed by index. Transitions of one state are kept sorted by label
// and then destination, so epsilon transitions come first and a transition on a
// given symbol can be found by binary search.
//
// The automaton moves through the pipeline MakeOneLetter -> Determinize ->
// Complete -> Minimize. Every transformation rebuilds the state and transition
// lists and swaps them in; a failed transformation leaves the automaton as it was.
type Automaton struct {
	states []State

	// transitions[i] holds the transitions leaving states[i].
	transitions []*transitionSet

	// Sorted single-symbol strings appearing on transition labels.
	alphabet []string

	start  int
	stage  Stage
	logger *slog.Logger
}

type Option func(*Automaton)

// WithLogger Log pipeline progress at debug level to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Automaton) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func newAutomaton(opts ...Option) *Automaton {
	a := &Automaton{
		start:  -1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewAutomaton Build an automaton from explicit states and edges. Exactly one state must be
// flagged as start. Edge labels may hold several symbols; an empty label is an epsilon
// transition.
func NewAutomaton(states []State, edges []Edge, opts ...Option) (*Automaton, error) {
	a := newAutomaton(opts...)

	for i, s := range states {
		if s.IsStart {
			if a.start != -1 {
				return nil, fmt.Errorf("states %d and %d: %w", a.start, i, ErrTooManyStartStates)
			}
			a.start = i
		}
		a.addState(s.Name, s.IsStart, s.IsAccept)
	}
	if a.start == -1 {
		return nil, ErrNoStartState
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= len(a.states) || e.To < 0 || e.To >= len(a.states) {
			return nil, fmt.Errorf("edge %d -> %d: state out of range [0, %d)", e.From, e.To, len(a.states))
		}
		a.addTransition(e.From, e.To, e.Label)
	}

	a.recalcAlphabet()
	return a, nil
}

// derive returns an empty automaton sharing the alphabet and logger of a.
func (a *Automaton) derive() *Automaton {
	return &Automaton{
		alphabet: a.alphabet,
		start:    -1,
		stage:    a.stage,
		logger:   a.logger,
	}
}

// replaceWith swaps the states and transitions of b into a.
func (a *Automaton) replaceWith(b *Automaton, stage Stage) {
	a.states = b.states
	a.transitions = b.transitions
	a.alphabet = b.alphabet
	a.start = b.start
	a.stage = stage
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	b := a.derive()
	b.states = slices.Clone(a.states)
	b.transitions = make([]*transitionSet, len(a.transitions))
	for i, ts := range a.transitions {
		b.transitions[i] = ts.clone()
	}
	b.alphabet = slices.Clone(a.alphabet)
	b.start = a.start
	return b
}

func (a *Automaton) addState(name string, isStart, isAccept bool) int {
	a.states = append(a.states, NewState(name, isStart, isAccept))
	a.transitions = append(a.transitions, newTransitionSet())
	return len(a.states) - 1
}

// addNumberedState adds a state named after its own index.
func (a *Automaton) addNumberedState(isStart, isAccept bool) int {
	return a.addState(strconv.Itoa(len(a.states)), isStart, isAccept)
}

func (a *Automaton) addTransition(from, to int, label string) bool {
	return a.transitions[from].add(Transition{Label: label, Dest: to})
}

func (a *Automaton) deleteTransition(from int, t Transition) bool {
	return a.transitions[from].remove(t)
}

func (a *Automaton) hasTransitionOnLabel(from int, label string) bool {
	return a.transitions[from].hasLabel(label)
}

func (a *Automaton) recalcAlphabet() {
	seen := make(map[string]struct{})
	for _, ts := range a.transitions {
		for _, t := range ts.all() {
			for _, symbol := range splitSymbols(t.Label) {
				seen[symbol] = struct{}{}
			}
		}
	}
	alphabet := make([]string, 0, len(seen))
	for symbol := range seen {
		alphabet = append(alphabet, symbol)
	}
	slices.Sort(alphabet)
	a.alphabet = alphabet
}

// splitSymbols splits a label into its symbols, one per rune.
func splitSymbols(label string) []string {
	symbols := make([]string, 0, len(label))
	for _, r := range label {
		symbols = append(symbols, string(r))
	}
	return symbols
}

// StateCount How many states this automaton has.
func (a *Automaton) StateCount() int {
	return len(a.states)
}

// TransitionCount How many transitions this automaton has.
func (a *Automaton) TransitionCount() int {
	count := 0
	for _, ts := range a.transitions {
		count += ts.len()
	}
	return count
}

// States returns a copy of the states.
func (a *Automaton) States() []State {
	return slices.Clone(a.states)
}

func (a *Automaton) State(i int) State {
	return a.states[i]
}

// Transitions returns a copy of the transitions leaving state, in order.
func (a *Automaton) Transitions(state int) []Transition {
	return slices.Clone(a.transitions[state].all())
}

// Alphabet returns a copy of the sorted alphabet.
func (a *Automaton) Alphabet() []string {
	return slices.Clone(a.alphabet)
}

// Start returns the index of the start state.
func (a *Automaton) Start() int {
	return a.start
}

func (a *Automaton) Stage() Stage {
	return a.stage
}

func (a *Automaton) logStage(op string) {
	a.logger.Debug(op,
		slog.String("stage", a.stage.String()),
		slog.Int("states", a.StateCount()),
		slog.Int("transitions", a.TransitionCount()),
	)
}
