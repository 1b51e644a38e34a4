package main

import (
	"os"

	"github.com/aretw0/sllist/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the list as a Mermaid diagram",
	Long:  `Runs the driver (or --file) without printing and outputs a Mermaid diagram (graph LR) of the final list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioPath, _ := cmd.Flags().GetString("file")
		highlight, _ := cmd.Flags().GetIntSlice("highlight")

		return cli.RunGraph(cmd.Context(), cli.GraphOptions{
			ScenarioPath: scenarioPath,
			Highlight:    highlight,
			Out:          os.Stdout,
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().IntSlice("highlight", nil, "Values to highlight on the diagram")
}
