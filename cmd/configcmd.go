package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"graphed/internal/config"
	"graphed/internal/ui"
)

func configCmd() *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the drawing configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if initialize {
				if err := config.EnsureExists(); err != nil {
					return fmt.Errorf("writing config: %w", err)
				}
			}

			cfg := config.Load()
			ui.Subtle.Printf("  config dir: %s\n\n", config.ConfigDir())
			ui.Table(
				[]string{"SETTING", "VALUE"},
				[][]string{
					{"canvas.width", strconv.Itoa(cfg.Canvas.Width)},
					{"canvas.height", strconv.Itoa(cfg.Canvas.Height)},
					{"canvas.background", cfg.Canvas.Background},
					{"vertex.radius", strconv.FormatFloat(cfg.Vertex.Radius, 'f', -1, 64)},
					{"vertex.color", orRandom(cfg.Vertex.Color)},
					{"vertex.show_labels", strconv.FormatBool(cfg.Vertex.ShowLabels)},
					{"edge.color", cfg.Edge.Color},
					{"edge.arrow_tip_width", strconv.FormatFloat(cfg.Edge.ArrowTipWidth, 'f', -1, 64)},
					{"edge.arrow_tip_height", strconv.FormatFloat(cfg.Edge.ArrowTipHeight, 'f', -1, 64)},
					{"interaction.edge_hit_slack", strconv.FormatFloat(cfg.Interaction.EdgeHitSlack, 'f', -1, 64)},
					{"interaction.click_threshold", strconv.FormatFloat(cfg.Interaction.ClickThreshold, 'f', -1, 64)},
				},
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "Write the default config file if none exists")
	return cmd
}

func orRandom(color string) string {
	if color == "" {
		return "(random per vertex)"
	}
	return color
}
