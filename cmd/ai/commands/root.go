package commands

import (
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	seed    int64
)

func Execute() error {
	root := &cobra.Command{
		Use:           "ai",
		Short:         "Search, logic, probability and learning exercises",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	root.AddCommand(
		degreesCmd(), tictactoeCmd(), knightsCmd(), minesweeperCmd(),
		pagerankCmd(), heredityCmd(), crosswordCmd(), shoppingCmd(),
		nimCmd(), trafficCmd(), parseCmd(), questionsCmd(),
	)

	return root.Execute()
}

// newRng honors --seed, falling back to a time seed.
func newRng() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(s))
}
