package commands

import (
	"bufio"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/nim"
)

func nimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nim",
		Short: "Train a Q-learning Nim agent and play it",
	}
	cmd.AddCommand(nimTrainCmd(), nimPlayCmd())

	return cmd
}

func nimTrainCmd() *cobra.Command {
	var configPath, modelPath string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the agent by self-play and save the Q-table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := nim.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = nim.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			log.Info().Int("games", cfg.Games).Msg("training")
			ai, err := nim.Train(cfg, newRng())
			if err != nil {
				return err
			}
			if err := ai.Save(modelPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Done training %d games; model saved to %s\n",
				cfg.Games, modelPath)

			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML training config")
	cmd.Flags().StringVar(&modelPath, "model", "nim.json", "where to write the Q-table")

	return cmd
}

func nimPlayCmd() *cobra.Command {
	var modelPath string
	var humanFirst bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play Nim against a trained agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ai, err := nim.LoadAI(modelPath)
			if err != nil {
				return err
			}

			human := 0
			if !humanFirst {
				human = 1
			}
			game := nim.NewGame()
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for !game.Over() {
				fmt.Fprintln(out, "\nPiles:")
				for i, n := range game.Piles {
					fmt.Fprintf(out, "Pile %d: %d\n", i, n)
				}

				var action nim.Action
				if game.Player == human {
					action = promptNimMove(game, in, out)
				} else {
					action, err = ai.ChooseAction(game.Piles, false)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "AI took %d from pile %d.\n", action.Count, action.Pile)
				}
				if err := game.Move(action); err != nil {
					return err
				}
			}

			if game.Winner == human {
				fmt.Fprintln(out, "You win!")
			} else {
				fmt.Fprintln(out, "AI wins.")
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&modelPath, "model", "nim.json", "trained Q-table to load")
	cmd.Flags().BoolVar(&humanFirst, "first", true, "move first")

	return cmd
}

// promptNimMove reads "pile count" moves until one is legal.
func promptNimMove(game *nim.Game, in *bufio.Scanner, out interface{ Write([]byte) (int, error) }) nim.Action {
	for {
		fmt.Fprint(out, "Your turn (pile count): ")
		if !in.Scan() {
			return nim.Action{}
		}
		var a nim.Action
		if _, err := fmt.Sscanf(in.Text(), "%d %d", &a.Pile, &a.Count); err != nil {
			fmt.Fprintln(out, "enter two numbers, e.g. 2 3")

			continue
		}
		if a.Pile < 0 || a.Pile >= len(game.Piles) || a.Count < 1 || a.Count > game.Piles[a.Pile] {
			fmt.Fprintln(out, "illegal move")

			continue
		}

		return a
	}
}
