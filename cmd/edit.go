package cmd

import (
	"fmt"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"graphed/internal/canvasw"
	"graphed/internal/config"
	"graphed/internal/editor"
	"graphed/internal/graphstore"
	"graphed/internal/render"
	"graphed/internal/ui"
)

func editCmd() *cobra.Command {
	var directed bool
	var demo bool

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the interactive editor window",
		Long: "Open the drawing window, optionally loading an edge list file.\n" +
			"Each line of the file names an edge as `u v`, or a lone vertex as `u`.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Banner("interactive editor")
			cfg := config.Load()

			var g *graphstore.Memory
			switch {
			case len(args) == 1:
				var err error
				g, err = loadEdgeList(args[0], directed)
				if err != nil {
					return err
				}
			case demo:
				g = demoGraph(directed)
			default:
				g = graphstore.NewMemory(directed)
			}

			settled := render.NewImageSurface(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background)
			interact := render.NewImageSurface(cfg.Canvas.Width, cfg.Canvas.Height, "")

			status := widget.NewLabel("")
			caption := widget.NewLabel("")
			sink := canvasw.NewSink(status, caption, &ui.Console{})

			ed, err := editor.New(g, cfg, settled, interact, sink)
			if err != nil {
				return fmt.Errorf("opening editor: %w", err)
			}

			a := app.New()
			w := a.NewWindow("graphed")
			canvas := canvasw.NewCanvas(ed, settled, interact)
			w.SetContent(canvasw.BuildContent(ed, canvas, status, caption))
			w.ShowAndRun()
			return nil
		},
	}

	cmd.Flags().BoolVar(&directed, "directed", false, "Edit a directed graph")
	cmd.Flags().BoolVar(&demo, "demo", false, "Start from a small demo graph")
	return cmd
}

// demoGraph builds a wheel on six vertices, enough to try every tool
// and layout on.
func demoGraph(directed bool) *graphstore.Memory {
	g := graphstore.NewMemory(directed)
	rim := []string{"a", "b", "c", "d", "e"}
	for i, v := range rim {
		g.AddEdge(v, rim[(i+1)%len(rim)])
		g.AddEdge("hub", v)
	}
	return g
}
