package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"graphed/internal/config"
	"graphed/internal/editor"
	"graphed/internal/graphstore"
	"graphed/internal/render"
	"graphed/internal/ui"
)

func exportCmd() *cobra.Command {
	var (
		directed bool
		layout   string
		output   string
		noLabels bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render an edge list to a PNG without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			g, err := loadEdgeList(args[0], directed)
			if err != nil {
				return err
			}
			if layout != "" {
				if err := g.ApplyLayout(graphstore.Layout(layout), graphstore.LayoutOptions{}); err != nil {
					return err
				}
			}

			settled := render.NewImageSurface(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background)
			interact := render.NewImageSurface(cfg.Canvas.Width, cfg.Canvas.Height, "")

			console := &ui.Console{Quiet: true}
			ed, err := editor.New(g, cfg, settled, interact, console)
			if err != nil {
				return err
			}
			if noLabels {
				ed.SetShowLabels(false)
			}
			if err := ed.ExportPNG(output); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Printf("%s wrote %s (%d vertices, %d edges)\n",
				ui.StatusIcon(true), output, g.Order(), g.Size())
			return nil
		},
	}

	cmd.Flags().BoolVar(&directed, "directed", false, "Treat the edge list as directed")
	cmd.Flags().StringVar(&layout, "layout", "spring", "Layout to apply: random, spring, circular, planar, forest, acyclic")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.png", "Output PNG path")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Render without vertex labels")
	return cmd
}

// loadEdgeList reads a graph from a text file: one edge `u v` or one
// lone vertex `u` per line. Blank lines and lines starting with #
// are skipped.
func loadEdgeList(path string, directed bool) (*graphstore.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := graphstore.NewMemory(directed)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			if !g.HasVertex(fields[0]) {
				if _, err := g.AddVertex(fields[0]); err != nil {
					return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
				}
			}
		case 2:
			if err := g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
		default:
			return nil, fmt.Errorf("%s:%d: want `u v` or `u`, got %q", path, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
