package solver

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/raster"
	"github.com/katalvlaran/pixelpath/search"
)

// Sentinel errors for the solver.
var (
	// ErrInvalidConfig indicates a Config that failed validation or parsing.
	ErrInvalidConfig = errors.New("solver: invalid config")
	// ErrUnknownAlgorithm indicates an algorithm name outside Algorithms.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// Option customizes a Solver.
type Option func(*Solver)

// WithLogr sets the logger. Default: logr.Discard().
func WithLogr(log logr.Logger) Option {
	return func(s *Solver) {
		s.log = log
	}
}

// Solver turns maze images into solved images according to a Config.
// A Solver is immutable after New and safe for concurrent use.
type Solver struct {
	cfg       Config
	wallColor color.NRGBA
	pathColor color.NRGBA
	log       logr.Logger
}

// Result describes one solved maze.
type Result struct {
	// Start is the entrance on the left edge; End the exit on the right edge.
	Start, End image.Point
	// Path holds the cells strictly between Start and End, in walking order.
	Path []image.Point
	// Algorithm is the engine that produced Path.
	Algorithm Algorithm
	// Expanded is the number of cells the engine expanded.
	Expanded int
	// Cost is the number of unit steps from Start to End along Path.
	Cost int
}

// New validates cfg and returns a Solver.
// Returns an error wrapping ErrInvalidConfig if cfg does not validate.
func New(cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	wall, err := raster.ParseHexColor(cfg.WallColor)
	if err != nil {
		return nil, fmt.Errorf("%w: wall_color: %v", ErrInvalidConfig, err)
	}
	path, err := raster.ParseHexColor(cfg.PathColor)
	if err != nil {
		return nil, fmt.Errorf("%w: path_color: %v", ErrInvalidConfig, err)
	}

	s := &Solver{
		cfg:       cfg,
		wallColor: wall,
		pathColor: path,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Config returns the configuration the Solver was built with.
func (s *Solver) Config() Config { return s.cfg }

// Solve classifies img into walls and open cells, locates the entrance and
// exit, and runs the configured engine between them.
//
// Errors:
//   - raster.ErrNilImage, gridgraph.ErrEmptyGrid for unusable images.
//   - gridgraph.ErrNoEntrance / ErrNoExit if an edge column has no opening.
//   - search.ErrPathNotFound (wrapped) if the exit is unreachable; the
//     component layout is logged first.
//   - search.ErrExpansionLimit or ctx.Err() when the search is cut short.
func (s *Solver) Solve(ctx context.Context, img image.Image) (*Result, error) {
	// 1) Pixels to grid
	grid, err := raster.GridFromImage(img, s.wallColor)
	if err != nil {
		return nil, err
	}

	// 2) Endpoints
	start, err := grid.Entrance()
	if err != nil {
		return nil, err
	}
	end, err := grid.Exit()
	if err != nil {
		return nil, err
	}
	s.log.V(1).Info("maze loaded",
		"width", grid.Width, "height", grid.Height,
		"openCells", grid.OpenCells(),
		"start", start.String(), "end", end.String())

	// 3) Search
	stats := &search.Stats{}
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithStats(stats),
		search.WithMaxExpansions(s.cfg.MaxExpansions),
	}
	path, cost, err := s.runEngine(grid, start, end, opts)
	if err != nil {
		if errors.Is(err, search.ErrPathNotFound) {
			s.diagnose(grid, start, end)
		}
		return nil, fmt.Errorf("solver: %s from %v to %v: %w", s.cfg.Algorithm, start, end, err)
	}

	res := &Result{
		Start:     start,
		End:       end,
		Path:      path,
		Algorithm: s.cfg.Algorithm,
		Expanded:  stats.Expanded,
		Cost:      cost,
	}
	s.log.Info("path found",
		"algorithm", string(res.Algorithm),
		"length", len(res.Path), "cost", res.Cost,
		"expanded", stats.Expanded, "discovered", stats.Discovered)

	return res, nil
}

// runEngine dispatches to the configured engine and returns the route cost.
func (s *Solver) runEngine(grid *gridgraph.GridGraph, start, end image.Point, opts []search.Option) ([]image.Point, int, error) {
	switch s.cfg.Algorithm {
	case Dijkstra:
		return search.ShortestPathCost[image.Point, int](grid, start, end, opts...)
	case DFS:
		path, err := search.DepthFirst[image.Point](grid, start, end, opts...)
		return path, stepCost(start, end, path), err
	case BFS:
		path, err := search.BreadthFirst[image.Point](grid, start, end, opts...)
		return path, stepCost(start, end, path), err
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.cfg.Algorithm)
	}
}

// stepCost counts unit steps of start, path..., end.
func stepCost(start, end image.Point, path []image.Point) int {
	if start == end {
		return 0
	}
	return len(path) + 1
}

// diagnose logs why no route exists: the sizes of the regions holding the
// entrance and the exit and how many regions the maze has.
func (s *Solver) diagnose(grid *gridgraph.GridGraph, start, end image.Point) {
	comps := grid.ConnectedComponents()
	startComp, _ := grid.ComponentOf(start)
	endComp, _ := grid.ComponentOf(end)

	size := func(id int) int {
		if id < 0 || id >= len(comps) {
			return 0
		}
		return len(comps[id])
	}
	s.log.Info("no path between entrance and exit",
		"components", len(comps),
		"startComponent", startComp, "startComponentSize", size(startComp),
		"endComponent", endComp, "endComponentSize", size(endComp))
}

// Route returns the cells to paint for res: its Path, plus Start and End
// when the Solver was configured with IncludeEndpoints.
func (s *Solver) Route(res *Result) []image.Point {
	if !s.cfg.IncludeEndpoints {
		return res.Path
	}
	route := make([]image.Point, 0, len(res.Path)+2)
	route = append(route, res.Start)
	route = append(route, res.Path...)
	if res.End != res.Start {
		route = append(route, res.End)
	}
	return route
}

// Render returns a copy of img with the route of res drawn in the
// configured path color.
func (s *Solver) Render(img image.Image, res *Result) (*image.NRGBA, error) {
	return raster.Paint(img, s.Route(res), s.pathColor)
}

// Run loads the maze at inPath, solves it, and writes the rendered result
// to outPath, whose extension selects the output format.
func (s *Solver) Run(ctx context.Context, inPath, outPath string) (*Result, error) {
	img, format, err := raster.Load(inPath)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	s.log.V(1).Info("image decoded", "path", inPath, "format", format,
		"width", b.Dx(), "height", b.Dy())

	res, err := s.Solve(ctx, img)
	if err != nil {
		return nil, err
	}

	out, err := s.Render(img, res)
	if err != nil {
		return nil, err
	}
	if err = raster.Save(outPath, out); err != nil {
		return nil, err
	}
	s.log.Info("solution written", "path", outPath)

	return res, nil
}
