package solver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pixelpath/raster"
)

// Algorithm names a search engine.
type Algorithm string

const (
	// Dijkstra finds a route of minimum length.
	Dijkstra Algorithm = "dijkstra"
	// DFS finds some route by depth-first traversal; not necessarily shortest.
	DFS Algorithm = "dfs"
	// BFS finds a route with the fewest steps by breadth-first traversal.
	BFS Algorithm = "bfs"
)

// Algorithms lists every supported algorithm in presentation order.
var Algorithms = []Algorithm{Dijkstra, DFS, BFS}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Config is the user-facing configuration of a Solver, loadable from YAML.
type Config struct {
	// Algorithm selects the search engine. Default: dijkstra.
	Algorithm Algorithm `yaml:"algorithm" validate:"required,oneof=dijkstra dfs bfs"`
	// WallColor is the exact pixel color treated as a wall, "#RRGGBB[AA]".
	WallColor string `yaml:"wall_color" validate:"required,hexcolor8"`
	// PathColor is the color used to draw the route, "#RRGGBB[AA]".
	PathColor string `yaml:"path_color" validate:"required,hexcolor8"`
	// IncludeEndpoints also paints the entrance and exit pixels.
	IncludeEndpoints bool `yaml:"include_endpoints"`
	// MaxExpansions caps expanded cells; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Algorithm: Dijkstra,
		WallColor: raster.HexColor(raster.DefaultWallColor),
		PathColor: raster.HexColor(raster.DefaultPathColor),
	}
}

// configValidate is shared by every Config.Validate call.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("hexcolor8", validateHexColor)
}

// validateHexColor accepts anything raster.ParseHexColor accepts.
func validateHexColor(fl validator.FieldLevel) bool {
	_, err := raster.ParseHexColor(fl.Field().String())
	return err == nil
}

// Validate checks every field; failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// DefaultConfig values; unknown keys are rejected. An empty path yields
// DefaultConfig; a named file that does not exist is an error wrapping
// fs.ErrNotExist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("solver: reading config %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: unmarshaling %q: %v", ErrInvalidConfig, path, err)
	}
	cfg.Algorithm = Algorithm(strings.ToLower(string(cfg.Algorithm)))

	return cfg, cfg.Validate()
}
