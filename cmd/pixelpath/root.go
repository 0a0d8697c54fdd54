package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixelpath/solver"
)

const version = "1.0.0"

// flags holds the raw command-line values before they are merged into a
// solver.Config.
type flags struct {
	configPath       string
	algorithm        string
	wallColor        string
	pathColor        string
	includeEndpoints bool
	maxExpansions    int
	logLevel         string
	logFormat        string
}

// newRootCmd builds the pixelpath command. Results go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	def := solver.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "pixelpath INPUT OUTPUT",
		Short: "Solve a maze image and paint the route",
		Long: `pixelpath reads a maze image, treats pixels of the wall color as walls,
enters through the first opening on the left edge, leaves through the first
opening on the right edge, and writes a copy of the image with the route
painted in the path color. The output format follows the OUTPUT extension.`,
		Args:         cobra.ExactArgs(2),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file; built-in defaults apply when unset")
	fs.StringVarP(&f.algorithm, "algorithm", "a", string(def.Algorithm), "search algorithm: dijkstra, bfs or dfs")
	fs.StringVar(&f.wallColor, "wall-color", def.WallColor, "exact pixel color treated as wall (#RRGGBB or #RRGGBBAA)")
	fs.StringVar(&f.pathColor, "path-color", def.PathColor, "color used to paint the route (#RRGGBB or #RRGGBBAA)")
	fs.BoolVar(&f.includeEndpoints, "include-endpoints", def.IncludeEndpoints, "also paint the entrance and exit pixels")
	fs.IntVar(&f.maxExpansions, "max-expansions", def.MaxExpansions, "abort after expanding this many pixels (0 = unlimited)")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

func run(cmd *cobra.Command, args []string, f *flags, stdout, stderr io.Writer) error {
	log, err := newLogger(stderr, f.logLevel, f.logFormat)
	if err != nil {
		return err
	}

	cfg, err := solver.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	if err = applyFlags(cmd, f, &cfg); err != nil {
		return err
	}

	s, err := solver.New(cfg, solver.WithLogr(log))
	if err != nil {
		return err
	}
	res, err := s.Run(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "solved %s: %s from %v to %v, %d steps, %d pixels expanded\n",
		args[0], res.Algorithm, res.Start, res.End, res.Cost, res.Expanded)
	return nil
}

// applyFlags copies explicitly set flags over cfg, so that a flag beats the
// config file and the config file beats the built-in defaults.
func applyFlags(cmd *cobra.Command, f *flags, cfg *solver.Config) error {
	fs := cmd.Flags()
	if fs.Changed("algorithm") {
		alg, err := solver.ParseAlgorithm(f.algorithm)
		if err != nil {
			return err
		}
		cfg.Algorithm = alg
	}
	if fs.Changed("wall-color") {
		cfg.WallColor = f.wallColor
	}
	if fs.Changed("path-color") {
		cfg.PathColor = f.pathColor
	}
	if fs.Changed("include-endpoints") {
		cfg.IncludeEndpoints = f.includeEndpoints
	}
	if fs.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	return nil
}
