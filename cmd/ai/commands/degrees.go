package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AndrewS622/Introduction-to-Artificial-Intelligence/degrees"
)

func degreesCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "degrees [source] [target]",
		Short: "Degrees of separation between two actors",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := degrees.LoadData(dataDir)
			if err != nil {
				return err
			}
			log.Debug().Int("people", len(data.People)).Int("movies", len(data.Movies)).
				Msg("data loaded")

			in := bufio.NewScanner(cmd.InOrStdin())
			source, err := resolvePerson(data, argOrPrompt(args, 0, "Name: ", in))
			if err != nil {
				return err
			}
			target, err := resolvePerson(data, argOrPrompt(args, 1, "Name: ", in))
			if err != nil {
				return err
			}

			steps, err := data.ShortestPath(source, target)
			if err != nil {
				return err
			}

			fmt.Printf("%d degrees of separation.\n", len(steps))
			prev := source
			for i, s := range steps {
				movie := data.Movies[s.MovieID]
				fmt.Printf("%d: %s and %s starred in %s\n",
					i+1, data.People[prev].Name, data.People[s.PersonID].Name, movie.Title)
				prev = s.PersonID
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", "data/degrees", "directory with people.csv, movies.csv, stars.csv")

	return cmd
}

// argOrPrompt returns args[i] when present, otherwise prompts on
// stdin.
func argOrPrompt(args []string, i int, prompt string, in *bufio.Scanner) string {
	if i < len(args) {
		return args[i]
	}
	fmt.Fprint(os.Stderr, prompt)
	if in.Scan() {
		return strings.TrimSpace(in.Text())
	}

	return ""
}

// resolvePerson maps a name to a single person ID, asking the user to
// disambiguate when several people share the name.
func resolvePerson(data *degrees.Data, name string) (string, error) {
	ids, err := data.PersonIDs(name)
	if err != nil {
		return "", err
	}
	if len(ids) == 1 {
		return ids[0], nil
	}

	fmt.Fprintf(os.Stderr, "Which %q?\n", name)
	for _, id := range ids {
		p := data.People[id]
		fmt.Fprintf(os.Stderr, "  ID %s: %s, born %s\n", p.ID, p.Name, p.Birth)
	}
	fmt.Fprint(os.Stderr, "Person ID: ")
	in := bufio.NewScanner(os.Stdin)
	if in.Scan() {
		id := strings.TrimSpace(in.Text())
		for _, candidate := range ids {
			if candidate == id {
				return id, nil
			}
		}
	}

	return "", degrees.ErrPersonNotFound
}
