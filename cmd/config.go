package cmd

import (
	"shobu/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Config() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Print the effective agent configuration",
		Long: heredoc.Doc(`config prints the configuration that play and arena would
			use, defaults included, as YAML.

			With --init the default configuration is written to the
			configuration file instead, so that it can be edited.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initialise, _ := cmd.Flags().GetBool("init"); initialise {
				path, _ := cmd.Flags().GetString("config")
				if err := config.Default().Save(path); err != nil {
					return err
				}
				log.Info().Msgf("wrote default configuration to %s", path)
				return nil
			}

			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := c.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cfg.Flags().Bool("init", false, "Write the default configuration file")

	return cfg
}
