package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/parser"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [sentence]",
		Short: "Parse a sentence and print its noun-phrase chunks",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence := strings.Join(args, " ")
			if sentence == "" {
				fmt.Fprint(os.Stderr, "Sentence: ")
				in := bufio.NewScanner(cmd.InOrStdin())
				if in.Scan() {
					sentence = in.Text()
				}
			}

			words := parser.Preprocess(sentence)
			trees, err := parser.Parse(parser.HolmesGrammar(), words)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range trees {
				fmt.Fprintln(out, t.Pretty())
				fmt.Fprintln(out, "Noun Phrase Chunks")
				for _, np := range parser.NPChunks(t) {
					fmt.Fprintf(out, "  %s\n", strings.Join(np.Words(), " "))
				}
			}

			return nil
		},
	}
}
