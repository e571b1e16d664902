package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/heredity"
)

func heredityCmd() *cobra.Command {
	var probsPath string

	cmd := &cobra.Command{
		Use:   "heredity [family.csv]",
		Short: "Gene and trait probabilities for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probs := heredity.DefaultProbs()
			if probsPath != "" {
				var err error
				probs, err = heredity.LoadProbs(probsPath)
				if err != nil {
					return err
				}
			}

			fam, err := heredity.LoadFamily(args[0])
			if err != nil {
				return err
			}
			dists, err := heredity.Compute(fam, probs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range fam.Names() {
				d := dists[name]
				fmt.Fprintf(out, "%s:\n", name)
				fmt.Fprintln(out, "  Gene:")
				for g := 2; g >= 0; g-- {
					fmt.Fprintf(out, "    %d: %.4f\n", g, d.Gene[g])
				}
				fmt.Fprintln(out, "  Trait:")
				fmt.Fprintf(out, "    True: %.4f\n", d.Trait[true])
				fmt.Fprintf(out, "    False: %.4f\n", d.Trait[false])
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&probsPath, "probs", "", "YAML file overriding the default probabilities")

	return cmd
}
