package search

// BreadthFirst finds a route with the fewest edges from start to end and
// returns the vertices strictly between them. Vertices are marked when they
// are enqueued, so each keeps the predecessor that discovered it first.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
func BreadthFirst[V comparable](g Graph[V], start, end V, opts ...Option) ([]V, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	queue := []V{start}
	seen := map[V]struct{}{start: {}}
	prev := make(map[V]V)
	cfg.Stats.Discovered++

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			return Reconstruct(end, prev)
		}
		if err = cfg.beforeExpand(); err != nil {
			return nil, err
		}

		for nb := range g.Neighbors(cur) {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			prev[nb] = cur
			queue = append(queue, nb)
			cfg.Stats.Discovered++
		}
	}

	return nil, ErrPathNotFound
}
