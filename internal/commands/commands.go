package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
)

// preRun returns a PreRunE handler that binds the command's flags through
// viper, unmarshals them into cfg, resolves positional args into
// cfg.Files and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args

		return cfg.Validate()
	}
}
