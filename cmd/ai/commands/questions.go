package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/questions"
)

func questionsCmd() *cobra.Command {
	var corpusDir string

	cmd := &cobra.Command{
		Use:   "questions [query...]",
		Short: "Answer a query over a text corpus",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := questions.LoadCorpus(corpusDir)
			if err != nil {
				return err
			}
			log.Debug().Int("documents", len(corpus)).Msg("corpus loaded")

			documents := make(map[string][]string, len(corpus))
			for name, text := range corpus {
				documents[name] = questions.Tokenize(text)
			}
			idfs := questions.ComputeIDFs(documents)

			queryText := strings.Join(args, " ")
			if queryText == "" {
				fmt.Fprint(os.Stderr, "Query: ")
				in := bufio.NewScanner(cmd.InOrStdin())
				if in.Scan() {
					queryText = in.Text()
				}
			}
			query := questions.Tokenize(queryText)

			sentences := make(map[string][]string)
			for _, name := range questions.TopFiles(query, documents, idfs, questions.FileMatches) {
				for _, s := range questions.Sentences(corpus[name]) {
					sentences[s] = questions.Tokenize(s)
				}
			}
			sentenceIDFs := questions.ComputeIDFs(sentences)

			out := cmd.OutOrStdout()
			for _, s := range questions.TopSentences(query, sentences, sentenceIDFs, questions.SentenceMatches) {
				fmt.Fprintln(out, s)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&corpusDir, "corpus", "data/corpus", "directory of .txt documents")

	return cmd
}
