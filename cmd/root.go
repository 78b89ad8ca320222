package cmd

import (
	"github.com/spf13/cobra"

	"graphed/internal/ui"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "graphed",
	Short: "graphed — an interactive graph editor",
	Long: ui.Brand.Sprint("graphed") + " — draw, edit and lay out graphs\n" +
		ui.Subtle.Sprint("Open a drawing window with `graphed edit`, or render headless with `graphed export`"),
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("graphed {{ .Version }}\n")

	rootCmd.AddCommand(
		editCmd(),
		exportCmd(),
		layoutsCmd(),
		configCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
