package search

// DepthFirst finds some route from start to end using an explicit stack and
// returns the vertices strictly between them. The route is not necessarily
// the shortest; it depends on the order in which g yields neighbors.
//
// A neighbor may be pushed several times through different parents before it
// is visited. Each push overwrites its predecessor, so the recorded parent is
// the one from the most recent push.
//
// Complexity:
//
//   - Time:  O(V + E) expansions; the stack may hold up to E entries.
//   - Space: O(V + E).
func DepthFirst[V comparable](g Graph[V], start, end V, opts ...Option) ([]V, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	stack := []V{start}
	visited := make(map[V]struct{})
	prev := make(map[V]V)
	cfg.Stats.Discovered++

	for len(stack) > 0 {
		// 1) Pop the top of the stack.
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		// 2) Goal check happens before the visited check.
		if cur == end {
			return Reconstruct(end, prev)
		}

		// 3) Already expanded through another parent.
		if _, ok := visited[cur]; ok {
			continue
		}
		if err = cfg.beforeExpand(); err != nil {
			return nil, err
		}
		visited[cur] = struct{}{}

		// 4) Push every neighbor that has not been expanded yet.
		for nb := range g.Neighbors(cur) {
			if _, ok := visited[nb]; ok {
				continue
			}
			if _, ok := prev[nb]; !ok {
				cfg.Stats.Discovered++
			}
			stack = append(stack, nb)
			prev[nb] = cur
		}
	}

	return nil, ErrPathNotFound
}
