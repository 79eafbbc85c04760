package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveForWord(t *testing.T) {
	tests := []struct {
		postfix string
		word    string
		want    int
	}{
		{"ab +c .aba.* .bac. +.+ *", "a", 2},
		{"acb. .bab.c .*.a b.ba.+.+* a.", "a", 2},
		{"ab+*c.d.ae*.+*", "a", Infinite},
		{"abc..*abc..*abc..*..", "abc", Infinite},
		{"aba.*baa..*+.ba.*.", "aba", Infinite},
		{"ab.abab...*.", "ab", Infinite},
		{"ab.", "ab", 1},
		{"ab.", "b", 1},
		{"ab.", "c", 0},
	}
	for _, tt := range tests {
		t.Run(tt.postfix+"/"+tt.word, func(t *testing.T) {
			a, err := NewAutomatonFromPostfix(tt.postfix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.SolveForWord(tt.word))
		})
	}
}

func TestSolveForWordString(t *testing.T) {
	a := defaultAutomata.MakeString("aaaa")
	assert.Equal(t, 4, a.SolveForWord("a"))
	assert.Equal(t, 2, a.SolveForWord("aa"))
	assert.Equal(t, 1, a.SolveForWord("aaaa"))
	assert.Equal(t, 0, a.SolveForWord("aaaaa"))
}

func TestSolveForWordEmpty(t *testing.T) {
	a := defaultAutomata.MakeString("ab")
	assert.Equal(t, Infinite, a.SolveForWord(""))
}

func TestSolveForWordLoop(t *testing.T) {
	a := defaultAutomata.MakeAnyString("ab")
	assert.Equal(t, Infinite, a.SolveForWord("ba"))
}

func TestSolveForWordUnreachable(t *testing.T) {
	// the only a-chain starts at a state the start state cannot reach
	a, err := NewAutomaton(
		[]State{NewState("0", true, true), NewState("1", false, false), NewState("2", false, false)},
		[]Edge{{0, 0, "b"}, {1, 2, "a"}, {2, 1, "a"}})
	require.NoError(t, err)
	assert.Equal(t, 0, a.SolveForWord("a"))
	assert.Equal(t, StageSingleLetter, a.Stage())
}
