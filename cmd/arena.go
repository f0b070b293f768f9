package cmd

import (
	"fmt"
	"os"
	"time"

	"shobu/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const SPIN = 14

func Arena() *cobra.Command {
	arena := &cobra.Command{
		Use:   "arena first second [first second]...",
		Short: "Play repeated matches between pairs of agents",
		Long: heredoc.Doc(`arena plays the given number of games for each pair of
			agents, alternating colours, and logs each pair's score with
			an elo estimate.

			When --out is set, the agents, games and moves are written as
			CSV files to a new timestamped folder inside it.`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected pairs of agent names, got %d names", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			games, _ := cmd.Flags().GetInt("games")
			parallel, _ := cmd.Flags().GetInt("parallel")
			out, _ := cmd.Flags().GetString("out")
			progress, _ := cmd.Flags().GetBool("progress")

			var pairings []experiments.Pairing
			for i := 0; i < len(args); i += 2 {
				pairings = append(pairings, experiments.Pairing{First: args[i], Second: args[i+1]})
			}

			options := []experiments.Option{
				experiments.WithGames(games),
				experiments.WithParallel(parallel),
			}
			if progress {
				s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Start()
				defer s.Stop()
				options = append(options, experiments.WithProgress(func(done, total int) {
					s.Lock()
					s.Suffix = fmt.Sprintf(" %d/%d games", done, total)
					s.Unlock()
				}))
			}

			a := experiments.NewArena(cfg, options...)
			report, err := a.Run(cmd.Context(), pairings)
			if err != nil {
				return err
			}
			report.Summarize(log.Logger)

			if out != "" {
				dir, err := a.Save(out, pairings, report)
				if err != nil {
					return err
				}
				log.Info().Msgf("stored records in %s", dir)
			}
			return nil
		},
	}

	arena.Flags().Int("games", 2, "Games per pair of agents")
	arena.Flags().Int("parallel", 1, "Games played at the same time")
	arena.Flags().String("out", "", "Folder to write CSV records to")
	arena.Flags().Bool("progress", false, "Show a spinner with the number of finished games")
	arena.Flags().Uint64("seed", 0, "Seed for every random choice, 0 for a random seed")
	arena.Flags().Int("max-plies", 0, "Plies after which a game is drawn")

	return arena
}
