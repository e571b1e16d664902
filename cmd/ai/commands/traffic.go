package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/nn"
	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/traffic"
)

func trafficCmd() *cobra.Command {
	var epochs int
	var learningRate float64
	var modelPath string

	cmd := &cobra.Command{
		Use:   "traffic [data-dir]",
		Short: "Train and evaluate the road-sign classifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := traffic.LoadDataset(args[0])
			if err != nil {
				return err
			}
			rng := newRng()
			train, test := ds.Split(traffic.TestFraction, rng)
			log.Info().Int("train", len(train.Images)).Int("test", len(test.Images)).
				Int("categories", ds.Categories).Msg("dataset loaded")

			net, err := traffic.Train(train,
				nn.WithEpochs(epochs),
				nn.WithLearningRate(learningRate),
				nn.WithRand(rng),
			)
			if err != nil {
				return err
			}

			ev, err := traffic.Evaluate(net, test)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d correct - accuracy: %.4f\n",
				ev.Correct, ev.Correct+ev.Incorrect, ev.Accuracy)

			if modelPath != "" {
				return net.Save(modelPath)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&epochs, "epochs", 10, "training epochs")
	cmd.Flags().Float64Var(&learningRate, "rate", 0.01, "learning rate")
	cmd.Flags().StringVar(&modelPath, "model", "", "save the trained network as JSON")

	return cmd
}
