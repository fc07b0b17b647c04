package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of awpak",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "awpak version %s\n", awpak.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
