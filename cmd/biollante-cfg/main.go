// Biollante-cfg configures and starts interactive genetic-algorithm runs.
//
// It builds a run configuration from a form of base settings and
// selection, replacement, crossover, mutation and stop-criteria methods,
// and POSTs it as JSON to the interactive endpoint of a waiting
// classifier-optimization job.
//
// Usage:
//
//	biollante-cfg [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'biollante-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/biollante/internal/logging"
	"github.com/muurk/biollante/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biollante-cfg",
	Short: "Genetic-Algorithm Run Configurator",
	Long: `A standalone utility for configuring interactive classifier-optimization runs.

Builds a run configuration (base settings plus selection, replacement,
crossover, mutation and stop-criteria methods) and sends it to the
interactive endpoint of a waiting job.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	addSettingsFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "biollante-cfg %s\n", version.Get())
	},
}
