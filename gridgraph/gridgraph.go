// Package gridgraph provides utilities to treat a 2D grid of wall and open
// cells as a graph. It supports:
//
//   - Four-connected neighbor generation with unit edge weights
//   - Entrance/exit location on the left and right edges
//   - Identification of connected components of open cells
//
// Walls are never vertices of the graph: they are skipped by Neighbors and
// WeightedNeighbors and ignored by ConnectedComponents.
package gridgraph

import (
	"image"
	"iter"
	"strings"
	"unicode/utf8"
)

// New constructs a GridGraph of the given size, asking isWall once per cell.
// Returns ErrEmptyGrid if width or height is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int, isWall func(x, y int) bool) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	walls := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			walls[y*width+x] = isWall(x, y)
		}
	}

	return &GridGraph{Width: width, Height: height, walls: walls}, nil
}

// Parse builds a GridGraph from text rows, one rune per cell, where WallRune
// marks a wall. Handy for tests and small fixtures.
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular if the
// rows differ in rune count.
func Parse(rows ...string) (*GridGraph, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != w {
			return nil, ErrNonRectangular
		}
	}

	return New(w, len(rows), func(x, y int) bool { return cells[y][x] == WallRune })
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsWall reports whether p is a wall. Points outside the grid count as walls.
func (gg *GridGraph) IsWall(p image.Point) bool {
	if !gg.InBounds(p.X, p.Y) {
		return true
	}
	return gg.walls[gg.index(p.X, p.Y)]
}

// IsOpen reports whether p is an in-bounds, non-wall cell.
func (gg *GridGraph) IsOpen(p image.Point) bool {
	return !gg.IsWall(p)
}

// Neighbors yields the open 4-connected neighbors of p in the order
// +x, −x, +y, −y. It implements search.Graph[image.Point].
func (gg *GridGraph) Neighbors(p image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for _, d := range offsets4 {
			q := image.Pt(p.X+d[0], p.Y+d[1])
			if gg.IsWall(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// WeightedNeighbors yields the same neighbors as Neighbors, each with weight 1.
// It implements search.WeightedGraph[image.Point, int].
func (gg *GridGraph) WeightedNeighbors(p image.Point) iter.Seq2[image.Point, int] {
	return func(yield func(image.Point, int) bool) {
		for q := range gg.Neighbors(p) {
			if !yield(q, 1) {
				return
			}
		}
	}
}

// OpenCells returns the number of non-wall cells.
// Complexity: O(W×H).
func (gg *GridGraph) OpenCells() int {
	n := 0
	for _, w := range gg.walls {
		if !w {
			n++
		}
	}
	return n
}

// String renders the grid with WallRune for walls and '.' for open cells,
// one line per row.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.walls[gg.index(x, y)] {
				sb.WriteRune(WallRune)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Index maps p to its row-major index, or -1 if p is out of bounds.
func (gg *GridGraph) Index(p image.Point) int {
	if !gg.InBounds(p.X, p.Y) {
		return -1
	}
	return gg.index(p.X, p.Y)
}

// Coordinate converts a row‑major index back to a point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) image.Point {
	return image.Pt(idx%gg.Width, idx/gg.Width)
}
