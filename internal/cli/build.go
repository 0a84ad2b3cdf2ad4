package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/milden6/wordgraph"
	"github.com/milden6/wordgraph/render"
	"github.com/milden6/wordgraph/wordlist"
)

func newBuildCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and minimize a word graph",
		Long: `Build reads the word list, builds a trie, minimizes it and checks that
every word is still recognized. The graph can be dumped as text or written as
Graphviz DOT or SVG.`,
		Example: `  wordgraph build -i lexicon_english.txt -v
  wordgraph build -i words.txt --dump
  wordgraph build -i words.txt --svg graph.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return runBuild(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&cfg.Dump, "dump", false, "print the minimized graph, one node per line")
	cmd.Flags().StringVar(&cfg.DOT, "dot", "", "write the minimized graph as Graphviz DOT to this file")
	cmd.Flags().StringVar(&cfg.SVG, "svg", "", "write the minimized graph as SVG to this file")

	return cmd
}

// buildStats is what build reports about a run.
type buildStats struct {
	Read        int
	Words       int
	NodesBefore int
	NodesAfter  int
	EdgesAfter  int
}

func runBuild(ctx context.Context, cfg *Config, out io.Writer) error {
	logger := loggerFromContext(ctx)

	g, stats, err := buildGraph(ctx, cfg.Input)
	if err != nil {
		return err
	}

	printStats(out, cfg.Input, stats)

	if cfg.Dump {
		fmt.Fprint(out, g.Dump())
	}

	if cfg.DOT != "" || cfg.SVG != "" {
		dot := render.ToDOT(g, render.Options{LeftToRight: true})
		if cfg.DOT != "" {
			if err := os.WriteFile(cfg.DOT, []byte(dot), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", cfg.DOT, err)
			}
			logger.Infof("Wrote %s", cfg.DOT)
		}
		if cfg.SVG != "" {
			svg, err := render.RenderSVG(dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(cfg.SVG, svg, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", cfg.SVG, err)
			}
			logger.Infof("Wrote %s", cfg.SVG)
		}
	}

	return nil
}

// buildGraph loads the word list at path, minimizes the resulting trie and
// verifies that the language survived. The returned graph is renumbered.
func buildGraph(ctx context.Context, path string) (*wordgraph.Graph, buildStats, error) {
	logger := loggerFromContext(ctx)
	var stats buildStats

	list, err := wordlist.Open(path)
	if err != nil {
		return nil, stats, err
	}
	defer list.Close()

	prog := newProgress(logger)
	g := wordgraph.New()
	stats.Read, err = wordlist.Load(g, list.Words())
	if err != nil {
		return nil, stats, err
	}
	if err := list.Err(); err != nil {
		return nil, stats, err
	}
	stats.Words = g.CountWords()
	stats.NodesBefore = g.CountNodes()
	prog.done(fmt.Sprintf("Loaded %d words (%d distinct) into %d nodes", stats.Read, stats.Words, stats.NodesBefore))

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	prog = newProgress(logger)
	err = g.Minimize(
		wordgraph.WithLogger(logger),
		wordgraph.WithProgress(percentLogger(logger, 10)),
	)
	if err != nil {
		return nil, stats, err
	}
	g.Renumber()
	stats.NodesAfter = g.CountNodes()
	stats.EdgesAfter = g.CountEdges()
	prog.done(fmt.Sprintf("Minimized graph to %d nodes", stats.NodesAfter))

	if err := verify(g, list, stats.Words); err != nil {
		return nil, stats, err
	}
	logger.Debug("Verified language after minimization", "words", stats.Words)

	return g, stats, nil
}

// verify checks that every listed word is still accepted and that no word
// was gained or lost.
func verify(g *wordgraph.Graph, list *wordlist.List, words int) error {
	for word := range list.Words() {
		if !g.Accepts(word) {
			return wordgraph.NewError(wordgraph.ErrCodeInternalInvariant, "word %q lost during minimization", word)
		}
	}
	if err := list.Err(); err != nil {
		return err
	}
	if n := g.CountWords(); n != words {
		return wordgraph.NewError(wordgraph.ErrCodeInternalInvariant, "minimized graph recognizes %d words, want %d", n, words)
	}
	return nil
}
