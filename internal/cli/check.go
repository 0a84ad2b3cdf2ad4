package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "check WORD...",
		Short:   "Report whether words are recognized by the minimized graph",
		Example: `  wordgraph check -i lexicon_english.txt cat cats dgo`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			g, _, err := buildGraph(cmd.Context(), cfg.Input)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, word := range args {
				printCheck(out, word, g.Accepts(word), g.IndexOf(word))
			}
			return nil
		},
	}
}
