package main

import (
	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/cli"
	"github.com/afuentesan/awpak-builder/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP editing API",
	Long: `Serves the configured store over HTTP: document CRUD, node edits,
validation, formatting, exports, change events (loam backend) and prometheus
metrics at /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		addr := app.Config.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		tui.PrintBanner(cmd.ErrOrStderr(), awpak.Version)
		cli.PrintSystemMessage(cmd.ErrOrStderr(), "Serving %s store on %s", app.Config.Store.Backend, addr)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := app.Serve(ctx, addr); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			cli.PrintSystemMessage(cmd.ErrOrStderr(), "Stopped on %v.", sig)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}
