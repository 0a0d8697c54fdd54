// Package gridgraph treats a 2D grid of wall and open cells as an implicit
// graph, ready to be handed to the engines in package search.
//
// What:
//
//   - GridGraph holds a rectangular wall mask built from a predicate (New) or
//     from text rows (Parse).
//   - Neighbors / WeightedNeighbors generate the open 4-connected neighbors of
//     a cell on demand (unit weight), bounds-checked against width and height.
//   - Entrance / Exit locate the first open cell on the left and right edges,
//     scanning top to bottom and skipping the border rows.
//   - ConnectedComponents / ComponentOf / Connected label regions of open
//     cells, useful to explain why no path exists.
//
// Vertices are image.Point values, so results can be drawn straight back onto
// the source image.
//
// Complexity:
//
//   - Neighbors:           O(1) per call, at most 4 neighbors.
//   - Entrance / Exit:     O(H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (Parse).
//   - ErrNoEntrance:     no open cell on the left edge.
//   - ErrNoExit:         no open cell on the right edge.
//   - ErrOutOfBounds:    point outside the grid (ComponentOf).
package gridgraph
