package main

import (
	"os"

	"github.com/aretw0/sllist/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the driver or a scenario file",
	Long:  `Runs the default driver, or the steps of --file, printing the list on every print step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioPath, _ := cmd.Flags().GetString("file")
		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		style, _ := cmd.Flags().GetString("style")
		metrics, _ := cmd.Flags().GetBool("metrics")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err := cli.Run(ctx, cli.RunOptions{
			ScenarioPath: scenarioPath,
			Format:       format,
			Style:        style,
			Debug:        debug,
			Metrics:      metrics,
			Out:          os.Stdout,
			ErrOut:       os.Stderr,
		})
		cli.ReportInterrupt(os.Stderr, ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("format", cli.FormatPlain, "Print format: plain or markdown")
	runCmd.Flags().String("style", "", "Markdown style (dark, light, notty); auto-detected when empty")
	runCmd.Flags().Bool("metrics", false, "Dump Prometheus metrics to stderr after the run")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
