package automaton

import "errors"

// MaxStates is the largest automaton Determinize and Minimize accept. Subsets of
// states are packed into a single 64-bit mask during subset construction.
const MaxStates = 60

var (
	// ErrTooManyStartStates is returned when more than one state is flagged as start.
	ErrTooManyStartStates = errors.New("too many start states in the automaton")

	// ErrTooManyStates is returned by Determinize and Minimize when the automaton
	// has more than MaxStates states.
	ErrTooManyStates = errors.New("too many states in the automaton")

	// ErrIncorrectPostfixExpression is returned when a postfix regular expression
	// has an operator without enough operands or leaves more than one operand.
	ErrIncorrectPostfixExpression = errors.New("incorrect postfix expression")
)
