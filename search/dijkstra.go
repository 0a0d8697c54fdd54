package search

// ShortestPath finds a minimum-total-weight route from start to end using
// uniform-cost search and returns the vertices strictly between them.
//
// Weights must be non-negative; negative weights are neither detected nor
// supported. If start == end the result is empty. If the frontier runs out
// before end is reached, ErrPathNotFound is returned and no partial path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable part of the graph.
//   - Space: O(V) for the distance map, predecessor map and heap.
func ShortestPath[V comparable, W Weight](g WeightedGraph[V, W], start, end V, opts ...Option) ([]V, error) {
	path, _, err := ShortestPathCost(g, start, end, opts...)

	return path, err
}

// ShortestPathCost is ShortestPath that also returns the total weight of the
// route found, i.e. the final distance of end.
func ShortestPathCost[V comparable, W Weight](g WeightedGraph[V, W], start, end V, opts ...Option) ([]V, W, error) {
	var zero W

	// 1) Build and validate options.
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, zero, err
	}

	// 2) Prepare per-call state.
	r := &dijkstraRunner[V, W]{
		g:        g,
		end:      end,
		options:  cfg,
		dist:     make(map[V]W),
		prev:     make(map[V]V),
		frontier: newFrontier[V, W](),
	}

	// 3) Seed the source and run the main loop.
	r.dist[start] = zero
	r.frontier.push(start, zero)
	r.options.Stats.Discovered++

	found, err := r.process()
	if err != nil {
		return nil, zero, err
	}
	if !found {
		return nil, zero, ErrPathNotFound
	}

	path, err := Reconstruct(end, r.prev)
	if err != nil {
		return nil, zero, err
	}

	return path, r.dist[end], nil
}

// dijkstraRunner holds the mutable state of a single ShortestPath call.
type dijkstraRunner[V comparable, W Weight] struct {
	g        WeightedGraph[V, W]
	end      V
	options  Options
	dist     map[V]W         // best-known distance from start; absent = infinite
	prev     map[V]V         // vertex → vertex that yields its best-known distance
	frontier *frontier[V, W] // discovered, not yet finalized
}

// process extracts the cheapest frontier vertex until end is reached or the
// frontier is exhausted.
func (r *dijkstraRunner[V, W]) process() (bool, error) {
	for r.frontier.Len() > 0 {
		u := r.frontier.pop()
		if u == r.end {
			return true, nil
		}
		if err := r.options.beforeExpand(); err != nil {
			return false, err
		}
		r.relax(u)
	}

	return false, nil
}

// relax examines every outgoing edge of u.
func (r *dijkstraRunner[V, W]) relax(u V) {
	du := r.dist[u]
	for v, w := range r.g.WeightedNeighbors(u) {
		candidate := du + w

		known, seen := r.dist[v]
		switch {
		case !seen:
			r.dist[v] = candidate
			r.prev[v] = u
			r.frontier.push(v, candidate)
			r.options.Stats.Discovered++
		case candidate < known:
			// Strictly cheaper: update in place, never re-add.
			r.dist[v] = candidate
			r.prev[v] = u
			r.frontier.decrease(v, candidate)
		}
	}
}
