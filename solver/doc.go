// Package solver wires raster, gridgraph and search into the end-to-end
// maze solving flow used by the pixelpath command.
//
// What:
//
//   - Config (YAML, validated) selects the algorithm, wall and path colors,
//     whether to paint the entrance and exit, and an optional expansion cap.
//   - Solver.Solve turns an image into a Result: entrance on the left edge,
//     exit on the right edge, and the cells between them.
//   - Solver.Render paints a Result onto a copy of the image.
//   - Solver.Run does Load, Solve, Render and Save in one call.
//
// Algorithms:
//
//   - dijkstra (default): shortest route.
//   - bfs: shortest route by step count via breadth-first traversal.
//   - dfs: some route, usually not the shortest.
//
// Logging goes through a logr.Logger supplied with WithLogr. When the exit is
// unreachable the solver logs the component layout of the maze before
// returning the wrapped search.ErrPathNotFound.
package solver
