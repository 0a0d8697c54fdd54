package gridgraph

import (
	"fmt"
	"image"
)

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity. Returns a slice of components; each component is a slice of
// cell indices (row-major) in discovery order. Components are ordered by their
// first cell in row-major order.
//
// To convert an index back to a point, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()
	return comps
}

// ComponentOf returns the index (into ConnectedComponents) of the component
// holding p, or -1 if p is a wall.
// Returns ErrOutOfBounds for points outside the grid.
func (gg *GridGraph) ComponentOf(p image.Point) (int, error) {
	if !gg.InBounds(p.X, p.Y) {
		return -1, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	labels, _ := gg.label()
	return labels[gg.index(p.X, p.Y)], nil
}

// Connected reports whether a and b are open cells of the same component.
// Complexity: O(W·H).
func (gg *GridGraph) Connected(a, b image.Point) bool {
	if gg.IsWall(a) || gg.IsWall(b) {
		return false
	}
	labels, _ := gg.label()
	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// label floods every open cell with the index of its component.
// Wall cells keep label -1.
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Width * gg.Height
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if gg.walls[i0] || labels[i0] >= 0 {
			continue
		}
		// BFS to collect component
		id := len(comps)
		queue := []int{i0}
		labels[i0] = id

		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			for _, d := range offsets4 {
				vx, vy := u.X+d[0], u.Y+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if gg.walls[vi] || labels[vi] >= 0 {
					continue
				}
				labels[vi] = id
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return labels, comps
}
