package solver_test

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelpath/gridgraph"
	"github.com/katalvlaran/pixelpath/raster"
	"github.com/katalvlaran/pixelpath/search"
	"github.com/katalvlaran/pixelpath/solver"
)

var (
	black = color.NRGBA{A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// smallMaze has entrance (0,1), exit (6,3) and a unique shortest route of
// 8 steps.
var smallMaze = []string{
	"#######",
	"...#..#",
	"#.##.##",
	"#......",
	"#######",
}

// splitMaze has a wall column that separates entrance from exit.
var splitMaze = []string{
	"#######",
	"...#...",
	"...#...",
	"...#...",
	"#######",
}

func mazeImage(rows ...string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			c := white
			if r == '#' {
				c = black
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// captureLogr returns a logger that appends every formatted line to lines.
func captureLogr(lines *[]string) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*lines = append(*lines, args)
	}, funcr.Options{Verbosity: 1})
}

func newSolver(t *testing.T, mutate func(*solver.Config), opts ...solver.Option) *solver.Solver {
	t.Helper()
	cfg := solver.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := solver.New(cfg, opts...)
	require.NoError(t, err)
	return s
}

// assertRoute checks that start, path..., end is a walk over open cells.
func assertRoute(t *testing.T, rows []string, res *solver.Result) {
	t.Helper()
	gg, err := gridgraph.Parse(rows...)
	require.NoError(t, err)
	route := append(append([]image.Point{res.Start}, res.Path...), res.End)
	for i, p := range route {
		assert.True(t, gg.IsOpen(p), "%v is a wall", p)
		if i > 0 {
			d := p.Sub(route[i-1])
			assert.Equal(t, 1, d.X*d.X+d.Y*d.Y, "step %v → %v", route[i-1], p)
		}
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := solver.DefaultConfig()
	cfg.Algorithm = "astar"
	_, err := solver.New(cfg)
	assert.ErrorIs(t, err, solver.ErrInvalidConfig)
}

func TestSolve_Dijkstra(t *testing.T) {
	s := newSolver(t, nil)
	res, err := s.Solve(context.Background(), mazeImage(smallMaze...))
	require.NoError(t, err)

	assert.Equal(t, image.Pt(0, 1), res.Start)
	assert.Equal(t, image.Pt(6, 3), res.End)
	assert.Equal(t, solver.Dijkstra, res.Algorithm)
	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, []image.Point{
		image.Pt(1, 1), image.Pt(1, 2), image.Pt(1, 3),
		image.Pt(2, 3), image.Pt(3, 3), image.Pt(4, 3), image.Pt(5, 3),
	}, res.Path)
	assert.Positive(t, res.Expanded)
	assertRoute(t, smallMaze, res)
}

func TestSolve_EachAlgorithm(t *testing.T) {
	for _, alg := range solver.Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			s := newSolver(t, func(c *solver.Config) { c.Algorithm = alg })
			res, err := s.Solve(context.Background(), mazeImage(smallMaze...))
			require.NoError(t, err)
			assert.Equal(t, alg, res.Algorithm)
			assert.Equal(t, len(res.Path)+1, res.Cost)
			assertRoute(t, smallMaze, res)
		})
	}
}

func TestSolve_BFSMatchesDijkstraLength(t *testing.T) {
	d, err := newSolver(t, nil).Solve(context.Background(), mazeImage(smallMaze...))
	require.NoError(t, err)
	b, err := newSolver(t, func(c *solver.Config) { c.Algorithm = solver.BFS }).
		Solve(context.Background(), mazeImage(smallMaze...))
	require.NoError(t, err)
	assert.Equal(t, d.Cost, b.Cost)
}

func TestSolve_NoPathLogsComponents(t *testing.T) {
	var lines []string
	s := newSolver(t, nil, solver.WithLogr(captureLogr(&lines)))

	_, err := s.Solve(context.Background(), mazeImage(splitMaze...))
	require.ErrorIs(t, err, search.ErrPathNotFound)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "no path between entrance and exit")
	assert.Contains(t, joined, `"components"=2`)
	assert.Contains(t, joined, `"startComponentSize"=9`)
	assert.Contains(t, joined, `"endComponentSize"=9`)
}

func TestSolve_Errors(t *testing.T) {
	s := newSolver(t, nil)
	ctx := context.Background()

	_, err := s.Solve(ctx, nil)
	assert.ErrorIs(t, err, raster.ErrNilImage)

	_, err = s.Solve(ctx, mazeImage(
		"####",
		"#...",
		"####",
	))
	assert.ErrorIs(t, err, gridgraph.ErrNoEntrance)

	_, err = s.Solve(ctx, mazeImage(
		"####",
		"...#",
		"####",
	))
	assert.ErrorIs(t, err, gridgraph.ErrNoExit)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	s := newSolver(t, func(c *solver.Config) { c.MaxExpansions = 1 })
	_, err := s.Solve(context.Background(), mazeImage(smallMaze...))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, alg := range solver.Algorithms {
		s := newSolver(t, func(c *solver.Config) { c.Algorithm = alg })
		_, err := s.Solve(ctx, mazeImage(smallMaze...))
		assert.ErrorIs(t, err, context.Canceled, alg)
	}
}

func TestRender(t *testing.T) {
	img := mazeImage(smallMaze...)
	s := newSolver(t, nil)
	res, err := s.Solve(context.Background(), img)
	require.NoError(t, err)

	out, err := s.Render(img, res)
	require.NoError(t, err)
	for _, p := range res.Path {
		assert.Equal(t, raster.DefaultPathColor, out.NRGBAAt(p.X, p.Y), "%v", p)
	}
	assert.Equal(t, white, out.NRGBAAt(res.Start.X, res.Start.Y), "entrance left unpainted")
	assert.Equal(t, white, out.NRGBAAt(res.End.X, res.End.Y), "exit left unpainted")
	assert.Equal(t, white, img.NRGBAAt(1, 1), "input untouched")
}

func TestRender_IncludeEndpoints(t *testing.T) {
	img := mazeImage(smallMaze...)
	s := newSolver(t, func(c *solver.Config) {
		c.IncludeEndpoints = true
		c.PathColor = "#0000ff"
	})
	res, err := s.Solve(context.Background(), img)
	require.NoError(t, err)

	route := s.Route(res)
	require.Len(t, route, len(res.Path)+2)
	assert.Equal(t, res.Start, route[0])
	assert.Equal(t, res.End, route[len(route)-1])

	out, err := s.Render(img, res)
	require.NoError(t, err)
	blue := color.NRGBA{B: 0xff, A: 0xff}
	assert.Equal(t, blue, out.NRGBAAt(res.Start.X, res.Start.Y))
	assert.Equal(t, blue, out.NRGBAAt(res.End.X, res.End.Y))
}

func TestSolve_CustomWallColor(t *testing.T) {
	img := mazeImage(smallMaze...)
	red := color.NRGBA{R: 0xff, A: 0xff}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == black {
				img.SetNRGBA(x, y, red)
			}
		}
	}

	res, err := newSolver(t, func(c *solver.Config) { c.WallColor = "#ff0000" }).
		Solve(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Cost)

	// With the default wall color nothing is a wall, so the route is straight.
	res, err = newSolver(t, nil).Solve(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(0, 1), res.Start)
	assert.Equal(t, image.Pt(6, 1), res.End)
	assert.Equal(t, 6, res.Cost)
}

func TestRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "maze.png")
	out := filepath.Join(dir, "solved.bmp")
	require.NoError(t, raster.Save(in, mazeImage(smallMaze...)))

	var lines []string
	s := newSolver(t, nil, solver.WithLogr(captureLogr(&lines)))
	res, err := s.Run(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Cost)

	got, format, err := raster.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "bmp", format)
	for _, p := range res.Path {
		assert.Equal(t, raster.DefaultPathColor, color.NRGBAModel.Convert(got.At(p.X, p.Y)))
	}
	assert.Contains(t, strings.Join(lines, "\n"), "solution written")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	s := newSolver(t, nil)

	_, err := s.Run(context.Background(), filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.png"))
	assert.Error(t, err)

	in := filepath.Join(dir, "maze.png")
	require.NoError(t, raster.Save(in, mazeImage(smallMaze...)))
	_, err = s.Run(context.Background(), in, filepath.Join(dir, "out.xyz"))
	assert.ErrorIs(t, err, raster.ErrUnsupportedFormat)
}
