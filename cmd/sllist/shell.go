package main

import (
	"os"

	"github.com/aretw0/sllist"
	"github.com/aretw0/sllist/internal/cli"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit a list interactively",
	Long:  `Reads create, append, delete and print commands from stdin and applies them to one list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err := cli.RunShell(ctx, cli.ShellOptions{
			In:      os.Stdin,
			Out:     os.Stdout,
			ErrOut:  os.Stderr,
			Debug:   debug,
			Version: sllist.Version,
		})
		cli.ReportInterrupt(os.Stderr, ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
