package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/minesweeper"
)

func minesweeperCmd() *cobra.Command {
	var height, width, mines int

	cmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Watch the inference AI play Minesweeper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := newRng()
			opts := []minesweeper.Option{
				minesweeper.WithSize(height, width),
				minesweeper.WithMines(mines),
				minesweeper.WithRand(rng),
			}
			game, err := minesweeper.NewGame(opts...)
			if err != nil {
				return err
			}
			ai, err := minesweeper.NewAI(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for !game.Won() {
				move, safe := ai.SafeMove()
				if !safe {
					var ok bool
					move, ok = ai.RandomMove()
					if !ok {
						break
					}
					log.Debug().Int("row", move.Row).Int("col", move.Col).
						Msg("no safe move, choosing at random")
				}

				hit, err := game.IsMine(move)
				if err != nil {
					return err
				}
				if hit {
					fmt.Fprintf(out, "Boom: (%d, %d) was a mine.\n", move.Row, move.Col)
					fmt.Fprint(out, game)

					return nil
				}

				count, err := game.NearbyMines(move)
				if err != nil {
					return err
				}
				ai.AddKnowledge(move, count)
				for _, m := range ai.KnownMines() {
					game.Flag(m)
				}
			}

			if game.Won() {
				fmt.Fprintln(out, "All mines flagged.")
			} else {
				fmt.Fprintln(out, "Board exhausted without flagging every mine.")
			}
			fmt.Fprint(out, game)

			return nil
		},
	}
	cmd.Flags().IntVar(&height, "height", 8, "board height")
	cmd.Flags().IntVar(&width, "width", 8, "board width")
	cmd.Flags().IntVar(&mines, "mines", 8, "number of mines")

	return cmd
}
