package automaton

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// Infinite is returned by SolveForWord when the word can be chained forever.
const Infinite = -1

// SolveForWord Returns how many times word can be read in a row along the automaton:
// the number of edges on the longest path of the graph linking u to v whenever v is
// reached from u by reading exactly word. Returns Infinite if that graph has a
// cycle. Runs MakeOneLetter and RemoveUnreachable first.
func (a *Automaton) SolveForWord(word string) int {
	a.MakeOneLetter()
	a.RemoveUnreachable()

	g := a.wordGraph(splitSymbols(word))
	length, ok := LongestPath(g)
	if !ok {
		length = Infinite
	}

	a.logger.Debug("solve for word",
		slog.String("word", word),
		slog.Int("states", len(g)),
		slog.Int("chain", length),
	)
	return length
}

// wordGraph links every state to the states reached by reading symbols from it.
func (a *Automaton) wordGraph(symbols []string) Digraph {
	g := make(Digraph, len(a.states))
	for state := range a.states {
		g[state] = a.reachableByWord(state, symbols)
	}
	return g
}

// reachableByWord returns, in ascending order, the states reached from `from` by
// reading symbols one transition per symbol. The automaton must be single-letter.
func (a *Automaton) reachableByWord(from int, symbols []string) []int {
	type position struct {
		state  int
		offset int
	}

	width := uint(len(symbols) + 1)
	seen := bitset.New(uint(len(a.states)) * width)
	reached := bitset.New(uint(len(a.states)))

	seen.Set(uint(from) * width)
	workList := []position{{state: from}}
	for len(workList) > 0 {
		p := workList[0]
		workList = workList[1:]

		if p.offset == len(symbols) {
			reached.Set(uint(p.state))
			continue
		}

		for _, t := range a.transitions[p.state].all() {
			if t.Label != symbols[p.offset] {
				continue
			}
			key := uint(t.Dest)*width + uint(p.offset+1)
			if !seen.Test(key) {
				seen.Set(key)
				workList = append(workList, position{state: t.Dest, offset: p.offset + 1})
			}
		}
	}

	result := make([]int, 0, reached.Count())
	for i, ok := reached.NextSet(0); ok; i, ok = reached.NextSet(i + 1) {
		result = append(result, int(i))
	}
	return result
}
