package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder"
)

var removeCmd = &cobra.Command{
	Use:   "remove <graph> <node-id>",
	Short: "Remove a node from a stored graph",
	Long: `Removes a node. A node other nodes still route to or read history from
is only removed with --force, which leaves those references unresolved.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ed := app.Editor
		if force, _ := cmd.Flags().GetBool("force"); force {
			ed = ed.With(awpak.WithAllowDangling(true))
		}
		n, err := ed.RemoveNode(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%d references left unresolved)\n", args[1], n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().Bool("force", false, "Remove the node even if references to it remain")
}
