package cmd

import (
	"github.com/spf13/cobra"

	"graphed/internal/ui"
)

func layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the available layouts",
		Run: func(cmd *cobra.Command, args []string) {
			ui.Table(
				[]string{"NAME", "GRAPHS", "DESCRIPTION"},
				[][]string{
					{"random", "all", "uniform random positions"},
					{"spring", "all", "force-directed placement"},
					{"circular", "all", "vertices evenly spaced on a circle"},
					{"planar", "planar", "spring placement, refused for dense graphs"},
					{"forest", "undirected acyclic", "trees in rows by depth"},
					{"acyclic", "directed acyclic", "layered by longest path from a source"},
				},
			)
		},
	}
}
