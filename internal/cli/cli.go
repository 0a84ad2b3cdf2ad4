// Package cli implements the wordgraph command-line interface.
//
// The build command reads a word list, builds the trie, minimizes it into a
// DAWG and reports node counts before and after. The check command builds the
// same graph and tests words against it. All commands accept --verbose (-v)
// for debug logging, which includes minimization progress.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the wordgraph CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		cfg        Config
		configPath string
	)

	root := &cobra.Command{
		Use:          "wordgraph",
		Short:        "Build minimal acyclic word graphs from word lists",
		Long:         `wordgraph builds a trie from a word list and minimizes it into a DAWG by merging equivalent suffixes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				file, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.merge(file, cmd.Flags().Changed)
			}

			level := charmlog.InfoLevel
			if cfg.Verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.Input, "input", "i", "", "word list, one word per line")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newBuildCmd(&cfg))
	root.AddCommand(newCheckCmd(&cfg))

	return root
}
