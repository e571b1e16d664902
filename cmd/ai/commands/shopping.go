package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/shopping"
)

func shoppingCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "shopping [shopping.csv]",
		Short: "Train and evaluate the purchase predictor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := shopping.Load(args[0])
			if err != nil {
				return err
			}
			train, test, err := data.Split(shopping.TestFraction, newRng())
			if err != nil {
				return err
			}
			log.Debug().Int("train", len(train.Labels)).Int("test", len(test.Labels)).
				Msg("dataset split")

			model, err := shopping.TrainKNN(train, k)
			if err != nil {
				return err
			}
			ev, err := shopping.Evaluate(test.Labels, model.PredictAll(test.Evidence))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Correct: %d\n", ev.Correct)
			fmt.Fprintf(out, "Incorrect: %d\n", ev.Incorrect)
			fmt.Fprintf(out, "True Positive Rate: %.2f%%\n", 100*ev.Sensitivity)
			fmt.Fprintf(out, "True Negative Rate: %.2f%%\n", 100*ev.Specificity)

			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 1, "number of neighbors")

	return cmd
}
