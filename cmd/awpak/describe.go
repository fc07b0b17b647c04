package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <graph>",
	Short: "Print a summary of a graph's nodes, stores and problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ref := args[0]
		g, err := app.LoadDocument(cmd.Context(), ref)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(ref), ".json")
		return tui.Print(cmd.OutOrStdout(), tui.Describe(name, g))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
