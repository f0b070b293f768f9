package cmd

import (
	"fmt"

	"shobu/agent"
	"shobu/engine"
	"shobu/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Play() *cobra.Command {
	play := &cobra.Command{
		Use:   "play",
		Short: "Play one game between two agents",
		Long: heredoc.Doc(`play runs a single game between the agents given for white
			and black, logging every move, and prints the result.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			whiteName, _ := cmd.Flags().GetString("white")
			blackName, _ := cmd.Flags().GetString("black")

			rules := game.NewStandardRules(game.WithMaxPlies(cfg.MaxPlies))
			var seeds [2]uint64
			if cfg.Seed != 0 {
				seeds = [2]uint64{cfg.Seed, cfg.Seed + 1}
			}

			agents := [2]agent.Agent{}
			for p, name := range []string{whiteName, blackName} {
				agentCfg, err := cfg.Agent(name)
				if err != nil {
					return err
				}
				agents[p], err = agent.New(name, game.Player(p), rules, agentCfg, seeds[p], log.Logger)
				if err != nil {
					return err
				}
			}

			e := engine.NewLocal(rules, agents[game.White], agents[game.Black], engine.WithClock(cfg.Clock))
			gameMetric, _, err := e.Run()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), e.State())
			if gameMetric.Winner == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s draw after %d moves\n", gameMetric.Result, gameMetric.TotalMoves)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s wins after %d moves\n", gameMetric.Result, gameMetric.Winner, gameMetric.TotalMoves)
			}
			return nil
		},
	}

	play.Flags().String("white", "alphabeta", "Agent playing white")
	play.Flags().String("black", "mcts", "Agent playing black")
	play.Flags().Uint64("seed", 0, "Seed for every random choice, 0 for a random seed")
	play.Flags().Int("max-plies", 0, "Plies after which the game is drawn")

	return play
}
