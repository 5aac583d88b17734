package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazely/pkg/maze"
	"github.com/matzehuels/mazely/pkg/render"
	"github.com/matzehuels/mazely/pkg/router"
	"github.com/matzehuels/mazely/pkg/solver"
)

// Carving algorithm names accepted by --algorithm.
const (
	algorithmBinaryTree = "binarytree"
	algorithmSideWinder = "sidewinder"
)

// Output format names accepted by --format.
const (
	formatText = "text"
	formatPNG  = "png"
	formatSVG  = "svg"
	formatDOT  = "dot"
)

// defaultSize is the default grid edge length in cells.
const defaultSize = 10

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatPNG: true, formatSVG: true, formatDOT: true}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	rows      int      // grid height in cells
	columns   int      // grid width in cells
	algorithm string   // carving policy: "binarytree" or "sidewinder"
	seed      uint64   // RNG seed; 0 picks one from the clock
	maskPath  string   // optional mask stencil file; its dimensions win
	solve     string   // optional "row,col" start cell for distance solving
	formats   []string // output formats
	output    string   // output file (single format) or base path (multiple)
	cellSize  int      // raster cell edge length in pixels
	config    string   // optional TOML config file
}

// newGenerateCmd creates the generate command: carve a maze, optionally solve
// it, and write it out in one or more formats.
//
// Defaults: 10×10 grid, binary tree carving, clock-derived seed, text format
// on stdout. PNG and SVG default to maze.png / maze.svg when --output is not
// given.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		rows:     defaultSize,
		columns:  defaultSize,
		cellSize: render.DefaultCellSize,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &opts, &formatsStr); err != nil {
				return err
			}
			opts.formats = parseFormats(formatsStr)
			if err := validateAlgorithm(opts.algorithm); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", opts.rows, "grid height in cells")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", opts.columns, "grid width in cells")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", algorithmBinaryTree, "carving algorithm: binarytree (default), sidewinder")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&opts.maskPath, "mask", "", "mask stencil file ('X' excludes a cell, '.' keeps it)")
	cmd.Flags().StringVar(&opts.solve, "solve", "", "solve from start cell \"row,col\" and colour by distance")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), png, svg, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", opts.cellSize, "raster cell edge length in pixels")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file with defaults")

	return cmd
}

// applyConfig loads the optional TOML config and fills in every value the
// user did not set explicitly on the command line.
func applyConfig(cmd *cobra.Command, opts *generateOpts, formatsStr *string) error {
	if opts.config == "" {
		return nil
	}
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("rows") && cfg.Generate.Rows > 0 {
		opts.rows = cfg.Generate.Rows
	}
	if !flags.Changed("columns") && cfg.Generate.Columns > 0 {
		opts.columns = cfg.Generate.Columns
	}
	if !flags.Changed("algorithm") && cfg.Generate.Algorithm != "" {
		opts.algorithm = cfg.Generate.Algorithm
	}
	if !flags.Changed("seed") && cfg.Generate.Seed != 0 {
		opts.seed = cfg.Generate.Seed
	}
	if !flags.Changed("cell-size") && cfg.Render.CellSize > 0 {
		opts.cellSize = cfg.Render.CellSize
	}
	if !flags.Changed("format") && cfg.Render.Format != "" {
		*formatsStr = cfg.Render.Format
	}
	return nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["text"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatText}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'text', 'png', 'svg', or 'dot')", f)
		}
	}
	return nil
}

// validateAlgorithm checks that the carving algorithm is known.
func validateAlgorithm(s string) error {
	if s != algorithmBinaryTree && s != algorithmSideWinder {
		return fmt.Errorf("invalid algorithm: %s (must be 'binarytree' or 'sidewinder')", s)
	}
	return nil
}

// newRouter builds the carving policy for a validated algorithm name.
func newRouter(algorithm string, src router.Source) maze.Router {
	if algorithm == algorithmSideWinder {
		return router.NewSideWinder(src)
	}
	return router.NewBinaryTree(src)
}

// resolveSeed replaces the zero seed with one derived from the clock.
func resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// buildMask resolves the masking predicate and final grid dimensions. A mask
// stencil overrides the dimension flags, since the stencil defines its own
// shape.
func buildMask(opts *generateOpts) (maze.AllowFunc, int, int, error) {
	if opts.maskPath == "" {
		return maze.AllowAll, opts.rows, opts.columns, nil
	}
	f, err := os.Open(opts.maskPath)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open mask: %w", err)
	}
	defer f.Close()

	allowed, rows, columns, err := maze.ParseMask(f)
	if err != nil {
		return nil, 0, 0, err
	}
	return allowed, rows, columns, nil
}

// parseStart parses the --solve flag and checks that it names an unmasked
// in-range cell, so the solver's precondition always holds.
func parseStart(g *maze.Grid, s string) (maze.Cell, error) {
	var row, column int
	if _, err := fmt.Sscanf(s, "%d,%d", &row, &column); err != nil {
		return maze.Cell{}, fmt.Errorf("invalid --solve value %q: want \"row,col\"", s)
	}
	cell, ok := g.Cell(row, column)
	if !ok {
		return maze.Cell{}, fmt.Errorf("start cell %d,%d is masked or out of range", row, column)
	}
	return cell, nil
}

// runGenerate carves, optionally solves, and renders to every requested
// format.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	allowed, rows, columns, err := buildMask(opts)
	if err != nil {
		return err
	}
	seed := resolveSeed(opts.seed)
	logger.Debugf("Carving %dx%d with %s, seed %d", rows, columns, opts.algorithm, seed)

	p := newProgress(logger)
	g, err := maze.New(rows, columns, allowed, newRouter(opts.algorithm, router.NewSource(seed)))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Carved %d cells (%s, seed %d)", len(g.Cells()), opts.algorithm, seed))

	if opts.solve != "" {
		start, err := parseStart(g, opts.solve)
		if err != nil {
			return err
		}
		d := solver.Solve(g, start.Row, start.Column)
		g.ApplyDistances(d.All())
		logger.Infof("Solved from %s: %d cells reachable, max distance %d", start, len(d.All()), d.Max())
	}

	for _, format := range opts.formats {
		if err := writeFormat(ctx, g, format, opts); err != nil {
			return err
		}
	}
	return nil
}

// outputPath decides where a format goes: the explicit --output for a single
// format, base.<ext> for multiple, and stdout ("") for text and dot when no
// output was requested.
func outputPath(format string, opts *generateOpts) string {
	if opts.output != "" {
		if len(opts.formats) == 1 {
			return opts.output
		}
		return opts.output + "." + format
	}
	if format == formatText || format == formatDOT {
		return ""
	}
	return "maze." + format
}

// writeFormat renders the grid into one format and writes it out.
func writeFormat(ctx context.Context, g *maze.Grid, format string, opts *generateOpts) error {
	path := outputPath(format, opts)

	var write func(w io.Writer) error
	switch format {
	case formatText:
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, render.Text(g))
			return err
		}
	case formatDOT:
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, render.DOT(g))
			return err
		}
	case formatPNG:
		write = func(w io.Writer) error {
			return render.WritePNG(w, g, &render.ImageOptions{CellSize: opts.cellSize})
		}
	case formatSVG:
		write = func(w io.Writer) error {
			s := newSpinner(ctx, "Rendering SVG via Graphviz...")
			s.start()
			data, err := render.SVG(ctx, render.DOT(g))
			s.stop()
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	if path == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	printSuccess("Generated %s", format)
	printFile(path)
	return nil
}
