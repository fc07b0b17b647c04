package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <graph> <old-id> <new-id>",
	Short: "Rename a node and rewrite every reference to it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		n, err := app.Editor.RenameNode(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %s (%d references updated)\n", args[1], args[2], n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
