package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder/pkg/domain"
)

var retagCmd = &cobra.Command{
	Use:   "retag <graph> <node-id>",
	Short: "Change the kind of a node or of its executor",
	Long: `Switches a node between Node and Graph with --node, or changes the
executor of a plain node with --executor. Fields shared by both kinds are
carried over.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nodeKind, _ := cmd.Flags().GetString("node")
		execKind, _ := cmd.Flags().GetString("executor")
		if (nodeKind == "") == (execKind == "") {
			return fmt.Errorf("set exactly one of --node or --executor")
		}

		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if nodeKind != "" {
			tag, ok := domain.ParseNodeTag(nodeKind)
			if !ok {
				return fmt.Errorf("unknown node kind %q (want one of %v)", nodeKind, domain.NodeTags())
			}
			return app.Editor.ChangeNodeKind(cmd.Context(), args[0], args[1], tag)
		}
		tag, ok := domain.ParseNodeExecutorTag(execKind)
		if !ok {
			return fmt.Errorf("unknown executor kind %q (want one of %v)", execKind, domain.NodeExecutorTags())
		}
		return app.Editor.ChangeExecutorKind(cmd.Context(), args[0], args[1], tag)
	},
}

func init() {
	rootCmd.AddCommand(retagCmd)
	retagCmd.Flags().String("node", "", "Target node kind (Node, Graph)")
	retagCmd.Flags().String("executor", "", "Target executor kind (Command, ContextMut, AgentHistoryMut, Agent, WebClient, Parallel, Graph)")
}
