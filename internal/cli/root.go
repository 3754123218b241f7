// Package cli holds the cobra commands of the condense binary.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "condense",
		Short:         "Summarize documents into text, PDF and audio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to YAML config file")

	cmd.AddCommand(newServeCmd(&cfgPath))
	cmd.AddCommand(newWatchCmd(&cfgPath))
	cmd.AddCommand(newRenderCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}
