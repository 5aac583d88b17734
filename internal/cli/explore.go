package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazely/pkg/maze"
	"github.com/matzehuels/mazely/pkg/render"
	"github.com/matzehuels/mazely/pkg/router"
	"github.com/matzehuels/mazely/pkg/solver"
)

// cursorGlyph marks the walkthrough position in the maze view. It collides
// with no renderer glyph, so styling can target it directly.
const cursorGlyph = '@'

// newExploreCmd creates the explore command: an interactive, read-only
// walkthrough of a freshly carved maze. The cursor moves only through carved
// passages; the link graph itself is never mutated.
func newExploreCmd() *cobra.Command {
	opts := generateOpts{
		rows:    defaultSize,
		columns: defaultSize,
	}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Walk through a maze interactively",
		Long: `Explore carves a maze and opens a terminal walkthrough. Arrow keys (or
hjkl) move the cursor along carved passages only; the status line shows the
shortest-hop distance back to the entry cell. Press r to carve a fresh maze,
q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var unusedFormats string
			if err := applyConfig(cmd, &opts, &unusedFormats); err != nil {
				return err
			}
			if err := validateAlgorithm(opts.algorithm); err != nil {
				return err
			}
			return runExplore(&opts)
		},
	}

	cmd.Flags().IntVarP(&opts.rows, "rows", "r", opts.rows, "grid height in cells")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", opts.columns, "grid width in cells")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", algorithmBinaryTree, "carving algorithm: binarytree (default), sidewinder")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().StringVar(&opts.maskPath, "mask", "", "mask stencil file ('X' excludes a cell, '.' keeps it)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file with defaults")

	return cmd
}

func runExplore(opts *generateOpts) error {
	allowed, rows, columns, err := buildMask(opts)
	if err != nil {
		return err
	}

	m, err := newExploreModel(exploreParams{
		rows:      rows,
		columns:   columns,
		allowed:   allowed,
		algorithm: opts.algorithm,
		seed:      resolveSeed(opts.seed),
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m).Run()
	return err
}

// exploreParams is everything needed to carve the maze again on demand.
type exploreParams struct {
	rows      int
	columns   int
	allowed   maze.AllowFunc
	algorithm string
	seed      uint64
}

// exploreModel is the bubbletea model for the walkthrough. It holds the
// carved grid read-only; only the cursor changes between keypresses.
type exploreModel struct {
	params    exploreParams
	grid      *maze.Grid
	distances *solver.Distances
	entry     maze.Cell
	cursor    maze.Cell
}

// newExploreModel carves a maze from params and solves it from the entry
// cell (the first unmasked cell in row-major order).
func newExploreModel(params exploreParams) (exploreModel, error) {
	g, err := maze.New(params.rows, params.columns, params.allowed,
		newRouter(params.algorithm, router.NewSource(params.seed)))
	if err != nil {
		return exploreModel{}, err
	}
	if len(g.Cells()) == 0 {
		return exploreModel{}, fmt.Errorf("mask excludes every cell")
	}

	entry := g.Cells()[0]
	return exploreModel{
		params:    params,
		grid:      g,
		distances: solver.Solve(g, entry.Row, entry.Column),
		entry:     entry,
		cursor:    entry,
	}, nil
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		return m.move(maze.North), nil
	case "right", "l":
		return m.move(maze.East), nil
	case "down", "j":
		return m.move(maze.South), nil
	case "left", "h":
		return m.move(maze.West), nil
	case "r":
		params := m.params
		params.seed++
		if next, err := newExploreModel(params); err == nil {
			return next, nil
		}
	}
	return m, nil
}

// move follows a carved passage, staying put when the wall is intact.
func (m exploreModel) move(dir maze.Compass) exploreModel {
	if !m.grid.Linked(m.cursor, dir) {
		return m
	}
	if next, ok := m.grid.Neighbour(m.cursor, dir); ok {
		m.cursor = next
	}
	return m
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ move  r new maze  q quit"))
	b.WriteString("\n\n")

	art := render.TextWithCursor(m.grid, m.cursor, cursorGlyph)
	b.WriteString(strings.Replace(art, string(cursorGlyph), styleCursor.Render(string(cursorGlyph)), 1))

	// Masked grids can leave pockets the carving never reached.
	distance := "unreachable"
	if d, ok := m.distances.All()[m.cursor]; ok {
		distance = fmt.Sprintf("%d", d)
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("cell %s · distance from entry %s · %s seed %d",
		m.cursor, distance, m.params.algorithm, m.params.seed)))
	b.WriteString("\n")

	return b.String()
}
