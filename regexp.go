package automaton

import (
	"cmp"
	"fmt"
	"strings"
	"unicode"
)

// Postfix operators.
const (
	OpConcatenation = '.'
	OpUnion         = '+'
	OpStar          = '*'
)

// pendingEdge is an exit of a block: a transition from state on label whose
// destination is not known yet.
type pendingEdge struct {
	state int
	label string
}

func comparePendingEdges(a, b pendingEdge) int {
	if c := cmp.Compare(a.state, b.state); c != 0 {
		return c
	}
	return strings.Compare(a.label, b.label)
}

// block is a sub-automaton under construction: the states it is entered
// through and its pending exits.
type block struct {
	in  []int
	out []pendingEdge
}

// NewAutomatonFromPostfix Build an automaton from a regular expression in postfix
// notation: symbols are operands, '.' concatenates and '+' unites the two topmost
// operands, '*' iterates the topmost one. Whitespace is ignored. Fails with
// ErrIncorrectPostfixExpression if an operator lacks operands or the expression
// does not reduce to exactly one operand.
func NewAutomatonFromPostfix(expr string, opts ...Option) (*Automaton, error) {
	a := newAutomaton(opts...)
	blocks := make([]block, 0)

	pop := func() block {
		b := blocks[len(blocks)-1]
		blocks = blocks[:len(blocks)-1]
		return b
	}

	for pos, r := range expr {
		switch {
		case unicode.IsSpace(r):
			continue

		case r == OpConcatenation:
			if len(blocks) < 2 {
				return nil, fmt.Errorf("concatenation at position %d: %w", pos, ErrIncorrectPostfixExpression)
			}
			right := pop()
			left := pop()
			if len(right.in) != 1 || len(left.out) != 1 {
				join := a.addNumberedState(false, false)
				a.connectEntries(join, right.in)
				a.connectExits(left.out, join)
			} else {
				a.addTransition(left.out[0].state, right.in[0], left.out[0].label)
			}
			blocks = append(blocks, block{in: left.in, out: right.out})

		case r == OpUnion:
			if len(blocks) < 2 {
				return nil, fmt.Errorf("union at position %d: %w", pos, ErrIncorrectPostfixExpression)
			}
			first := pop()
			second := pop()
			blocks = append(blocks, block{
				in:  unionSorted(first.in, second.in, cmp.Compare[int]),
				out: unionSorted(first.out, second.out, comparePendingEdges),
			})

		case r == OpStar:
			if len(blocks) < 1 {
				return nil, fmt.Errorf("iteration at position %d: %w", pos, ErrIncorrectPostfixExpression)
			}
			b := pop()
			loop := a.addNumberedState(false, false)
			a.connectEntries(loop, b.in)
			a.connectExits(b.out, loop)
			blocks = append(blocks, block{in: []int{loop}, out: []pendingEdge{{state: loop}}})

		default:
			s := a.addNumberedState(false, false)
			blocks = append(blocks, block{
				in:  []int{s},
				out: []pendingEdge{{state: s, label: string(r)}},
			})
		}
	}

	if len(blocks) != 1 {
		return nil, fmt.Errorf("%d operands left: %w", len(blocks), ErrIncorrectPostfixExpression)
	}

	b := blocks[0]
	final := a.addNumberedState(false, true)
	a.connectExits(b.out, final)
	a.start = a.addNumberedState(true, false)
	a.connectEntries(a.start, b.in)

	a.recalcAlphabet()
	a.logStage("postfix")
	return a, nil
}

// connectEntries adds epsilon transitions from state to every entry.
func (a *Automaton) connectEntries(state int, entries []int) {
	for _, s := range entries {
		a.addTransition(state, s, "")
	}
}

// connectExits materializes every pending exit as a transition to state.
func (a *Automaton) connectExits(exits []pendingEdge, state int) {
	for _, e := range exits {
		a.addTransition(e.state, state, e.label)
	}
}
