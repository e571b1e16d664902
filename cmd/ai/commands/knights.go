package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/knights"
)

func knightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "knights",
		Short: "Solve the knights-and-knaves puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range knights.Puzzles() {
				fmt.Fprintln(out, p.Name)
				entailed, err := knights.Solve(p)
				if err != nil {
					return err
				}
				for _, sym := range entailed {
					fmt.Fprintf(out, "    %s\n", sym)
				}
			}

			return nil
		},
	}
}
