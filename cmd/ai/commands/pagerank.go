package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/pagerank"
)

func pagerankCmd() *cobra.Command {
	var damping float64
	var samples int

	cmd := &cobra.Command{
		Use:   "pagerank [corpus-dir]",
		Short: "Rank a corpus of linked pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := pagerank.LoadCorpus(args[0])
			if err != nil {
				return err
			}
			log.Debug().Int("pages", len(corpus.Pages())).Msg("corpus loaded")

			sampled, err := corpus.SampleRanks(damping, samples, newRng())
			if err != nil {
				return err
			}
			iterated, err := corpus.IterateRanks(damping, pagerank.Threshold)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "PageRank Results from Sampling (n = %d)\n", samples)
			for _, p := range corpus.Pages() {
				fmt.Fprintf(out, "  %s: %.4f\n", p, sampled[p])
			}
			fmt.Fprintln(out, "PageRank Results from Iteration")
			for _, p := range corpus.Pages() {
				fmt.Fprintf(out, "  %s: %.4f\n", p, iterated[p])
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&damping, "damping", pagerank.Damping, "damping factor")
	cmd.Flags().IntVar(&samples, "samples", pagerank.Samples, "sampling steps")

	return cmd
}
