package commands

import (
	"github.com/spf13/cobra"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
	"github.com/VishnuVardhan0007/image-encryption/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Long: `Decrypt files previously produced by encrypt. The key and the mode must
match the ones used at encryption time; the container does not record
them.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
