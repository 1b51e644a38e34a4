package main

import (
	"fmt"

	"github.com/aretw0/sllist"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sllist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sllist version %s\n", sllist.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
