package automaton

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sizes struct {
	states, transitions int
}

func sizeOf(a *Automaton) sizes {
	return sizes{a.StateCount(), a.TransitionCount()}
}

func TestMinDFASizes(t *testing.T) {
	test := minDFA(t)
	assert.Equal(t, sizes{4, 8}, sizeOf(test))

	test.MakeOneLetter()
	assert.Equal(t, sizes{4, 8}, sizeOf(test))

	require.NoError(t, test.Determinize())
	assert.Equal(t, sizes{4, 8}, sizeOf(test))

	// applying twice must not change anything
	require.NoError(t, test.Complete())
	assert.Equal(t, sizes{4, 8}, sizeOf(test))
	require.NoError(t, test.Complete())
	assert.Equal(t, sizes{4, 8}, sizeOf(test))

	require.NoError(t, test.Minimize())
	assert.Equal(t, sizes{4, 8}, sizeOf(test))
	require.NoError(t, test.Minimize())
	assert.Equal(t, sizes{4, 8}, sizeOf(test))
	assert.Equal(t, StageMinimal, test.Stage())
}

func TestStarNFASizes(t *testing.T) {
	test := starNFA(t)
	original := test.Clone()
	assert.Equal(t, sizes{3, 6}, sizeOf(test))

	test.MakeOneLetter()
	assert.Equal(t, sizes{3, 9}, sizeOf(test))
	test.MakeOneLetter()
	assert.Equal(t, sizes{3, 9}, sizeOf(test))

	require.NoError(t, test.Determinize())
	assert.Equal(t, sizes{3, 9}, sizeOf(test))

	require.NoError(t, test.Complete())
	assert.Equal(t, sizes{3, 9}, sizeOf(test))

	require.NoError(t, test.Minimize())
	assert.Equal(t, sizes{1, 3}, sizeOf(test))
	assert.Equal(t, NewState("0+1+2", true, true), test.State(0))

	assertSameLanguage(t, original, test, 6)
}

func TestHomeworkNFASizes(t *testing.T) {
	test := homeworkNFA(t)
	original := test.Clone()
	assert.Equal(t, sizes{4, 7}, sizeOf(test))

	test.MakeOneLetter()
	assert.Equal(t, sizes{6, 11}, sizeOf(test))

	require.NoError(t, test.Determinize())
	assert.Equal(t, sizes{9, 16}, sizeOf(test))
	require.NoError(t, test.Determinize())
	assert.Equal(t, sizes{9, 16}, sizeOf(test))

	require.NoError(t, test.Complete())
	assert.Equal(t, sizes{10, 20}, sizeOf(test))

	require.NoError(t, test.Minimize())
	assert.Equal(t, sizes{6, 12}, sizeOf(test))

	assertSameLanguage(t, original, test, 8)
}

func TestMakeOneLetter(t *testing.T) {
	t.Run("splits long labels", func(t *testing.T) {
		a, err := NewAutomaton(
			[]State{NewState("s", true, false), NewState("f", false, true)},
			[]Edge{{0, 1, "abc"}})
		require.NoError(t, err)

		a.MakeOneLetter()
		assert.Equal(t, sizes{4, 3}, sizeOf(a))
		assert.Equal(t, []Transition{{Label: "a", Dest: 2}}, a.Transitions(0))
		assert.Equal(t, []Transition{{Label: "b", Dest: 3}}, a.Transitions(2))
		assert.Equal(t, []Transition{{Label: "c", Dest: 1}}, a.Transitions(3))
		assert.Equal(t, "2", a.State(2).Name)
		assert.True(t, Run(a, "abc"))
		assert.False(t, Run(a, "ab"))
	})

	t.Run("splits by rune", func(t *testing.T) {
		a, err := NewAutomaton(
			[]State{NewState("s", true, false), NewState("f", false, true)},
			[]Edge{{0, 1, "αβ"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"α", "β"}, a.Alphabet())

		a.MakeOneLetter()
		assert.Equal(t, sizes{3, 2}, sizeOf(a))
		assert.True(t, Run(a, "αβ"))
	})

	t.Run("promotes accept through epsilon", func(t *testing.T) {
		a, err := NewAutomaton(
			[]State{NewState("s", true, false), NewState("m", false, false), NewState("f", false, true)},
			[]Edge{{0, 1, ""}, {1, 2, ""}, {2, 2, "x"}})
		require.NoError(t, err)

		a.MakeOneLetter()
		for _, s := range a.States() {
			assert.Truef(t, s.IsAccept, "state %s", s.Name)
		}
		assert.Equal(t, []Transition{{Label: "x", Dest: 2}}, a.Transitions(0))
		for state := 0; state < a.StateCount(); state++ {
			for _, tr := range a.Transitions(state) {
				assert.NotEmpty(t, tr.Label)
			}
		}
	})
}

func TestDeterminize(t *testing.T) {
	t.Run("nondeterministic choice", func(t *testing.T) {
		// strings over {a, b} ending in ab
		a, err := NewAutomaton(
			[]State{NewState("0", true, false), NewState("1", false, false), NewState("2", false, true)},
			[]Edge{{0, 0, "a"}, {0, 0, "b"}, {0, 1, "a"}, {1, 2, "b"}})
		require.NoError(t, err)
		original := a.Clone()

		require.NoError(t, a.Determinize())
		assert.Equal(t, StageDeterministic, a.Stage())
		assert.Equal(t, sizes{3, 6}, sizeOf(a))
		assert.Equal(t, []string{"0", "0,1", "0,2"}, []string{a.State(0).Name, a.State(1).Name, a.State(2).Name})
		assert.True(t, a.State(0).IsStart)
		assert.True(t, a.State(2).IsAccept)

		for state := 0; state < a.StateCount(); state++ {
			seen := make(map[string]bool)
			for _, tr := range a.Transitions(state) {
				assert.False(t, seen[tr.Label])
				seen[tr.Label] = true
			}
		}
		assertSameLanguage(t, original, a, 7)
	})

	t.Run("only reachable subsets", func(t *testing.T) {
		a, err := NewAutomaton(
			[]State{NewState("0", true, false), NewState("1", false, true), NewState("2", false, true)},
			[]Edge{{0, 1, "a"}, {2, 1, "b"}})
		require.NoError(t, err)

		require.NoError(t, a.Determinize())
		assert.Equal(t, sizes{2, 1}, sizeOf(a))
		assert.Equal(t, []string{"a", "b"}, a.Alphabet())
	})

	t.Run("too many states", func(t *testing.T) {
		a := bigAutomaton(t, MaxStates+1)
		err := a.Determinize()
		assert.ErrorIs(t, err, ErrTooManyStates)
		assert.Equal(t, MaxStates+1, a.StateCount())
		assert.Equal(t, StageRaw, a.Stage())

		err = a.Minimize()
		assert.ErrorIs(t, err, ErrTooManyStates)
		err = a.Complete()
		assert.ErrorIs(t, err, ErrTooManyStates)
		assert.Equal(t, StageRaw, a.Stage())
	})

	t.Run("too many states after splitting", func(t *testing.T) {
		a := bigAutomaton(t, MaxStates)
		before := a.String()

		err := a.Determinize()
		assert.ErrorIs(t, err, ErrTooManyStates)
		assert.Equal(t, before, a.String())
		assert.Equal(t, StageRaw, a.Stage())
	})

	t.Run("too many states once deterministic", func(t *testing.T) {
		// a is the sixth symbol from the end: 64 subsets
		edges := []Edge{{0, 0, "a"}, {0, 0, "b"}, {0, 1, "a"}}
		states := []State{NewState("0", true, false)}
		for i := 1; i <= 6; i++ {
			states = append(states, NewState(strconv.Itoa(i), false, i == 6))
			if i < 6 {
				edges = append(edges, Edge{i, i + 1, "a"}, Edge{i, i + 1, "b"})
			}
		}
		a, err := NewAutomaton(states, edges)
		require.NoError(t, err)

		require.NoError(t, a.Determinize())
		assert.Equal(t, 64, a.StateCount())

		err = a.Determinize()
		assert.ErrorIs(t, err, ErrTooManyStates)
		assert.Equal(t, StageDeterministic, a.Stage())
		assert.Equal(t, 64, a.StateCount())

		err = a.Minimize()
		assert.ErrorIs(t, err, ErrTooManyStates)

		require.NoError(t, a.Complete())
		assert.Equal(t, sizes{64, 128}, sizeOf(a))
	})

	t.Run("at the limit", func(t *testing.T) {
		a := defaultAutomata.MakeString(strings.Repeat("a", MaxStates-1))
		require.NoError(t, a.Determinize())
		assert.Equal(t, MaxStates, a.StateCount())
		assert.True(t, Run(a, strings.Repeat("a", MaxStates-1)))
	})
}

// bigAutomaton has n states and one edge labeled "ab", which splitting turns
// into an extra state.
func bigAutomaton(t *testing.T, n int) *Automaton {
	t.Helper()
	states := []State{NewState("0", true, false)}
	for i := 1; i < n; i++ {
		states = append(states, NewState(strconv.Itoa(i), false, false))
	}
	a, err := NewAutomaton(states, []Edge{{0, 1, "a"}, {1, 2, "ab"}, {1, 0, ""}, {3, 1, ""}})
	require.NoError(t, err)
	return a
}


func TestComplete(t *testing.T) {
	a, err := NewAutomaton(
		[]State{NewState("0", true, false), NewState("1", false, true)},
		[]Edge{{0, 1, "a"}, {1, 1, "b"}})
	require.NoError(t, err)
	original := a.Clone()

	require.NoError(t, a.Complete())
	assert.Equal(t, StageComplete, a.Stage())
	assert.Equal(t, sizes{3, 6}, sizeOf(a))
	assert.Equal(t, NewState("drain", false, false), a.State(2))
	for state := 0; state < a.StateCount(); state++ {
		assert.Len(t, a.Transitions(state), len(a.Alphabet()))
	}
	assertSameLanguage(t, original, a, 6)

	require.NoError(t, a.Complete())
	assert.Equal(t, sizes{3, 6}, sizeOf(a))

	t.Run("empty alphabet", func(t *testing.T) {
		e := defaultAutomata.MakeEmptyString()
		require.NoError(t, e.Complete())
		assert.Equal(t, sizes{1, 0}, sizeOf(e))
	})
}

func TestRemoveUnreachable(t *testing.T) {
	a, err := NewAutomaton(
		[]State{NewState("0", true, false), NewState("1", false, true), NewState("2", false, false)},
		[]Edge{{0, 1, "a"}, {2, 1, "b"}, {2, 2, "c"}})
	require.NoError(t, err)

	a.RemoveUnreachable()
	assert.Equal(t, sizes{3, 1}, sizeOf(a))
	assert.Empty(t, a.Transitions(2))
}
