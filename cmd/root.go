// Package cmd is the shobu command line.
package cmd

import (
	"fmt"
	"os"
	"time"

	"shobu/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "shobu",
		Short: "Play Shobu with alpha-beta and Monte-Carlo tree search agents",
		Long: heredoc.Doc(`shobu pits search agents against each other at Shobu.

			Agents are defined in a YAML file, by default the one in the
			user's configuration directory. Two agents named alphabeta and
			mcts are always available with their default settings.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd)
		},
	}

	// global flags
	root.PersistentFlags().String("log-level", "info", "Minimum level of the logs written to stderr")
	root.PersistentFlags().Bool("pretty", false, "Write human readable logs instead of JSON")
	root.PersistentFlags().String("config", config.Path, "Agent configuration file")

	root.AddCommand(Play())
	root.AddCommand(Arena())
	root.AddCommand(Config())

	return root
}

func setupLogging(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("max-plies") {
		cfg.MaxPlies, _ = cmd.Flags().GetInt("max-plies")
	}
	return cfg, cfg.Validate()
}
