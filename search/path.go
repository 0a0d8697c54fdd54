package search

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Reconstruct walks prev backward from target and returns the vertices
// strictly between the root of the chain (the start) and target, in
// start-to-target order.
//
// Neither endpoint is part of the result: target is never collected because
// the walk begins at its predecessor, and the start is recognised as the
// first vertex without a predecessor of its own. Callers that want the full
// route must add both endpoints themselves.
//
// A chain that revisits a vertex yields ErrCyclicPredecessors. Maps built by
// the engines in this package are always acyclic.
func Reconstruct[V comparable](target V, prev map[V]V) ([]V, error) {
	path := make([]V, 0)
	seen := map[V]struct{}{target: {}}

	cur := target
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %v revisited", ErrCyclicPredecessors, p)
		}
		if _, hasParent := prev[p]; !hasParent {
			break // p is the start
		}
		seen[p] = struct{}{}
		path = append(path, p)
		cur = p
	}

	// The walk above yields target-to-start order.
	slices.Reverse(path)

	return path, nil
}
