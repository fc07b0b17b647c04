package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afuentesan/awpak-builder/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "awpak",
	Short: "awpak edits and checks workflow graph documents",
	Long: `awpak reads, validates, formats, visualizes and edits awpak workflow graphs.

Arguments naming a graph may be a file (anything ending in .json, containing
a path separator, or "-" for stdin) or the name of a document in the
configured store.`,
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
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration (default awpak.yaml)")
	rootCmd.PersistentFlags().String("backend", "", "Override store.backend (memory, file, redis, postgres, loam)")
	rootCmd.PersistentFlags().String("dir", "", "Override the file and loam store directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// openApp builds the application from the persistent flags. The caller must
// Close it.
func openApp(cmd *cobra.Command) (*cli.App, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	backend, _ := flags.GetString("backend")
	dir, _ := flags.GetString("dir")
	debug, _ := flags.GetBool("debug")

	return cli.Open(cmd.Context(), cli.Options{
		ConfigPath: configPath,
		Backend:    backend,
		Dir:        dir,
		Debug:      debug,
		Stdin:      cmd.InOrStdin(),
	})
}
