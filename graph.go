package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Digraph is a directed graph on vertices 0..len-1; g[v] lists the successors of v.
type Digraph [][]int

// dfsFrame is a vertex on an explicit DFS stack together with the index of the
// next successor to visit.
type dfsFrame struct {
	vertex int
	next   int
}

// HasCycle reports whether g contains a directed cycle. Vertices are white until
// reached, grey while on the DFS stack and black once all their successors are
// done; an edge to a grey vertex closes a cycle.
func HasCycle(g Digraph) bool {
	grey := bitset.New(uint(len(g)))
	black := bitset.New(uint(len(g)))

	for root := range g {
		if black.Test(uint(root)) {
			continue
		}
		grey.Set(uint(root))
		stack := []dfsFrame{{vertex: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g[top.vertex]) {
				w := g[top.vertex][top.next]
				top.next++
				if grey.Test(uint(w)) {
					return true
				}
				if !black.Test(uint(w)) {
					grey.Set(uint(w))
					stack = append(stack, dfsFrame{vertex: w})
				}
				continue
			}
			grey.Clear(uint(top.vertex))
			black.Set(uint(top.vertex))
			stack = stack[:len(stack)-1]
		}
	}
	return false
}

// TopologicalSort returns the vertices of g in reverse DFS post-order. For an
// acyclic g every edge goes from an earlier to a later vertex.
func TopologicalSort(g Digraph) []int {
	visited := bitset.New(uint(len(g)))
	order := make([]int, 0, len(g))

	for root := range g {
		if visited.Test(uint(root)) {
			continue
		}
		visited.Set(uint(root))
		stack := []dfsFrame{{vertex: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g[top.vertex]) {
				w := g[top.vertex][top.next]
				top.next++
				if !visited.Test(uint(w)) {
					visited.Set(uint(w))
					stack = append(stack, dfsFrame{vertex: w})
				}
				continue
			}
			order = append(order, top.vertex)
			stack = stack[:len(stack)-1]
		}
	}

	slices.Reverse(order)
	return order
}

// LongestPath returns the number of edges on the longest path of g, or false if
// g has a cycle.
func LongestPath(g Digraph) (int, bool) {
	if HasCycle(g) {
		return 0, false
	}

	longest := make([]int, len(g))
	for _, v := range TopologicalSort(g) {
		for _, w := range g[v] {
			longest[w] = max(longest[w], longest[v]+1)
		}
	}

	best := 0
	for _, l := range longest {
		best = max(best, l)
	}
	return best, true
}
