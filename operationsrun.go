package automaton

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Run Returns true if the automaton accepts s. Works at any stage: epsilon
// transitions and labels of several symbols are followed as they are.
func Run(a *Automaton, s string) bool {
	type position struct {
		state  int
		offset int
	}

	width := uint(len(s) + 1)
	seen := bitset.New(uint(len(a.states)) * width)

	seen.Set(uint(a.start) * width)
	workList := []position{{state: a.start}}
	for len(workList) > 0 {
		p := workList[0]
		workList = workList[1:]

		if p.offset == len(s) && a.states[p.state].IsAccept {
			return true
		}

		for _, t := range a.transitions[p.state].all() {
			if !strings.HasPrefix(s[p.offset:], t.Label) {
				continue
			}
			next := p.offset + len(t.Label)
			key := uint(t.Dest)*width + uint(next)
			if !seen.Test(key) {
				seen.Set(key)
				workList = append(workList, position{state: t.Dest, offset: next})
			}
		}
	}
	return false
}
