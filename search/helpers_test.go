package search_test

import (
	"iter"
	"strconv"
)

// edge is a weighted arc used by the synthetic test graphs.
type edge struct {
	to string
	w  int
}

// adjGraph is an in-memory adjacency list. Edges are yielded in insertion
// order, which keeps every search deterministic.
type adjGraph map[string][]edge

// WeightedNeighbors implements search.WeightedGraph.
func (g adjGraph) WeightedNeighbors(v string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, e := range g[v] {
			if !yield(e.to, e.w) {
				return
			}
		}
	}
}

// Neighbors implements search.Graph.
func (g adjGraph) Neighbors(v string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range g[v] {
			if !yield(e.to) {
				return
			}
		}
	}
}

// arc adds a directed edge u→v.
func (g adjGraph) arc(u, v string, w int) adjGraph {
	g[u] = append(g[u], edge{to: v, w: w})
	return g
}

// link adds an undirected edge u-v.
func (g adjGraph) link(u, v string, w int) adjGraph {
	return g.arc(u, v, w).arc(v, u, w)
}

// weightOf sums the weights along start → path… → end, taking the first
// matching arc between consecutive vertices. ok is false if an arc is missing.
func (g adjGraph) weightOf(start string, path []string, end string) (total int, ok bool) {
	route := append(append([]string{start}, path...), end)
	for i := 0; i+1 < len(route); i++ {
		found := false
		for _, e := range g[route[i]] {
			if e.to == route[i+1] {
				total += e.w
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}

	return total, true
}

// bruteForceMin enumerates every simple path from start to end and returns
// the smallest total weight.
func (g adjGraph) bruteForceMin(start, end string) (best int, ok bool) {
	onPath := map[string]bool{start: true}
	var walk func(v string, acc int)
	walk = func(v string, acc int) {
		if v == end {
			if !ok || acc < best {
				best, ok = acc, true
			}
			return
		}
		for _, e := range g[v] {
			if onPath[e.to] {
				continue
			}
			onPath[e.to] = true
			walk(e.to, acc+e.w)
			onPath[e.to] = false
		}
	}
	walk(start, 0)

	return best, ok
}

// lineGraph builds the undirected unit-weight line A-B-C.
func lineGraph() adjGraph {
	return adjGraph{}.link("A", "B", 1).link("B", "C", 1)
}

// cycleGraph builds the undirected unit-weight 4-cycle A-B-C-D-A.
func cycleGraph() adjGraph {
	return adjGraph{}.link("A", "B", 1).link("B", "C", 1).link("C", "D", 1).link("D", "A", 1)
}

// chain returns "N0".."N<n-1>" connected as a directed line.
func chain(n int) adjGraph {
	g := adjGraph{}
	for i := 0; i+1 < n; i++ {
		g.arc(name(i), name(i+1), 1)
	}
	return g
}

func name(i int) string { return "N" + strconv.Itoa(i) }
