package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder/pkg/validate"
)

var errInvalid = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <graph>...",
	Short: "Check graphs for broken references and structural problems",
	Long: `Decodes each graph and reports duplicate ids, routes to unknown nodes,
unknown stores and sub-graph nodes without a path. Nodes that no route from
the first node reaches are reported as warnings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		failed := false
		for _, ref := range args {
			g, err := app.LoadDocument(cmd.Context(), ref)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", ref, err)
				failed = true
				continue
			}
			issues := validate.Issues(validate.Graph(g))
			for _, is := range issues {
				fmt.Fprintf(out, "%s: %v\n", ref, is)
			}
			for _, id := range validate.Unreachable(g) {
				fmt.Fprintf(out, "%s: warning: node %q is unreachable\n", ref, id)
			}
			if len(issues) > 0 {
				failed = true
				continue
			}
			fmt.Fprintf(out, "%s: ok\n", ref)
		}
		if failed {
			return errInvalid
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
