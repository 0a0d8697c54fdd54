package gridgraph

import "image"

// Entrance returns the first open cell found scanning down column 0,
// skipping the top and bottom border rows.
// Returns ErrNoEntrance if there is none (including grids shorter than 3 rows).
// Complexity: O(H).
func (gg *GridGraph) Entrance() (image.Point, error) {
	if p, ok := gg.firstOpenInColumn(0); ok {
		return p, nil
	}
	return image.Point{}, ErrNoEntrance
}

// Exit returns the first open cell found scanning down the last column,
// skipping the top and bottom border rows.
// Returns ErrNoExit if there is none.
// Complexity: O(H).
func (gg *GridGraph) Exit() (image.Point, error) {
	if p, ok := gg.firstOpenInColumn(gg.Width - 1); ok {
		return p, nil
	}
	return image.Point{}, ErrNoExit
}

// firstOpenInColumn scans rows 1..Height-2 of column x.
func (gg *GridGraph) firstOpenInColumn(x int) (image.Point, bool) {
	for y := 1; y < gg.Height-1; y++ {
		if !gg.walls[gg.index(x, y)] {
			return image.Pt(x, y), true
		}
	}
	return image.Point{}, false
}
