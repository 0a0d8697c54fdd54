// Package pixelpath solves maze images: it finds a route from an opening on
// the left edge to an opening on the right edge and paints it onto a copy of
// the image.
//
// Everything is organized under four subpackages, leaves first:
//
//	search/        : generic shortest-path (Dijkstra), depth-first and
//	                 breadth-first search over any comparable vertex type
//	gridgraph/     : a wall/open grid exposing 4-connected neighbors,
//	                 entrance/exit lookup and connected components
//	raster/        : image decoding and encoding, wall classification by
//	                 exact color, path painting
//	solver/        : YAML config, algorithm selection and the end-to-end
//	                 load, solve, render, save flow
//
// The pixelpath command in cmd/pixelpath drives solver from the shell:
//
//	pixelpath maze.png solved.png --algorithm dijkstra --path-color '#ff6600'
//
// Quick ASCII example ('#' wall, '.' open, 'o' route):
//
//	#######          #######
//	...#..#          .o.#..#
//	#.##.##    →     #o##.##
//	#......          #ooooo.
//	#######          #######
//
//	go install github.com/katalvlaran/pixelpath/cmd/pixelpath@latest
package pixelpath
