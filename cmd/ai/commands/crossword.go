package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/crossword"
)

func crosswordCmd() *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "crossword [structure] [words]",
		Short: "Generate a crossword from a structure and word list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cw, err := crossword.New(args[0], args[1])
			if err != nil {
				return err
			}
			assignment, err := crossword.NewGenerator(cw).Solve()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), cw.Render(assignment))
			if imagePath != "" {
				return cw.SaveImage(assignment, imagePath)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "output", "", "also save a PNG rendering to this path")

	return cmd
}
