package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/tictactoe"
)

func tictactoeCmd() *cobra.Command {
	var playO bool

	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the minimax AI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			human := tictactoe.X
			if playO {
				human = tictactoe.O
			}

			board := tictactoe.NewBoard()
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for !board.Terminal() {
				fmt.Fprintln(out, renderBoard(board))
				var err error
				if board.Player() == human {
					board, err = humanMove(board, in, out)
				} else {
					var move tictactoe.Action
					move, err = tictactoe.Minimax(board)
					if err == nil {
						board, err = board.Result(move)
					}
				}
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(out, renderBoard(board))
			if winner, won := board.Winner(); won {
				fmt.Fprintf(out, "Game over: %s wins.\n", winner)
			} else {
				fmt.Fprintln(out, "Game over: tie.")
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&playO, "second", false, "play O and let the AI open")

	return cmd
}

func renderBoard(b tictactoe.Board) string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		if i > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for j := 0; j < 3; j++ {
			if j > 0 {
				sb.WriteByte('|')
			}
			fmt.Fprintf(&sb, " %s ", b[i][j])
		}
	}

	return sb.String()
}

// humanMove prompts until a legal "row col" move is entered.
func humanMove(b tictactoe.Board, in *bufio.Scanner, out interface{ Write([]byte) (int, error) }) (tictactoe.Board, error) {
	for {
		fmt.Fprintf(out, "%s to move (row col, 0-2): ", b.Player())
		if !in.Scan() {
			return b, fmt.Errorf("tictactoe: input closed")
		}
		var a tictactoe.Action
		if _, err := fmt.Sscanf(strings.TrimSpace(in.Text()), "%d %d", &a.Row, &a.Col); err != nil {
			fmt.Fprintln(out, "enter two numbers, e.g. 1 2")

			continue
		}
		next, err := b.Result(a)
		if err != nil {
			fmt.Fprintln(out, "illegal move")

			continue
		}

		return next, nil
	}
}
