// Package gridgraph defines the grid type and sentinel errors of the
// gridgraph subpackage of github.com/katalvlaran/pixelpath.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoEntrance indicates column 0 has no open cell between the border rows.
	ErrNoEntrance = errors.New("gridgraph: no open cell on the left edge")
	// ErrNoExit indicates the last column has no open cell between the border rows.
	ErrNoExit = errors.New("gridgraph: no open cell on the right edge")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)

// WallRune marks a wall cell in the textual form accepted by Parse and
// produced by String. Any other rune is an open cell.
const WallRune = '#'

// offsets4 lists the orthogonal moves in expansion order: +x, −x, +y, −y.
var offsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// GridGraph treats a rectangular grid of wall/open cells as an implicit,
// 4-connected, unit-weight graph whose vertices are image.Point coordinates.
// It is immutable once built. walls is row-major: walls[y*Width+x].
type GridGraph struct {
	Width, Height int
	walls         []bool
}
