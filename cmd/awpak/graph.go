package main

import (
	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <graph>",
	Short: "Export the flow graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) or a Graphviz DOT document of the
node routing. Unreachable nodes are highlighted and routes to unknown nodes
are dashed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("format")
		format, err := awpak.ParseFormat(name)
		if err != nil {
			return err
		}

		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		g, err := app.LoadDocument(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out, err := awpak.Render(g, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", string(awpak.FormatMermaid), "Output format: mermaid, dot or json")
}
