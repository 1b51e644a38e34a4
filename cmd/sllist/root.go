package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sllist",
	Short: "sllist drives a singly linked list",
	Long: `sllist creates a singly linked list, appends to it, deletes from it and prints it.
Without a subcommand it runs the default driver (create 1, append 2, append 3, print).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Log every list operation to stderr")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Scenario file (YAML or JSON) to run instead of the default driver")
}
