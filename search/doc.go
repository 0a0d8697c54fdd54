// Package search implements single-source, single-target path finding over
// implicit graphs.
//
// What:
//
//   - ShortestPath / ShortestPathCost: uniform-cost (Dijkstra) search for a
//     minimum-total-weight route over a WeightedGraph.
//   - DepthFirst: stack-based traversal that returns some route over a Graph.
//   - BreadthFirst: queue-based traversal that returns a fewest-edges route.
//   - Reconstruct: rebuilds a route from a predecessor map.
//
// The graph is never materialized. Callers supply a vertex type (any
// comparable Go type) and a capability that generates the outgoing edges of a
// vertex on demand, either by implementing Graph / WeightedGraph or by
// wrapping a closure in NeighborsFunc / EdgesFunc:
//
//	edges := search.EdgesFunc[string, int](func(v string) iter.Seq2[string, int] {
//		return func(yield func(string, int) bool) {
//			for _, e := range adj[v] {
//				if !yield(e.to, e.w) {
//					return
//				}
//			}
//		}
//	})
//	path, err := search.ShortestPath(edges, "A", "C")
//
// Returned routes:
//
// Every engine returns only the intermediate vertices, strictly between start
// and end. Neither endpoint is included, so start == end yields an empty,
// non-nil slice. Callers that draw or measure the whole route must add the
// endpoints themselves.
//
// State:
//
// Distance, predecessor, visited and frontier structures are created per call
// and dropped on return. The engines are synchronous, keep no global state and
// are safe to call concurrently as long as the graph is.
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked once per expansion.
//   - WithMaxExpansions(n)   cap on expanded vertices (0 = unlimited).
//   - WithStats(&s)          expanded / discovered counters.
//
// Errors:
//
//   - ErrPathNotFound        frontier exhausted without reaching end.
//   - ErrExpansionLimit      WithMaxExpansions budget spent.
//   - ErrOptionViolation     invalid option value.
//   - ErrCyclicPredecessors  Reconstruct given a cyclic map.
//   - ctx.Err()              context cancelled.
package search
