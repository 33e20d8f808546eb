package commands

import (
	"github.com/spf13/cobra"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
	"github.com/VishnuVardhan0007/image-encryption/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Long: `Encrypt files with AES-256 under the selected mode. Without --key or
--key-file a fresh key is generated; pass --save-key to persist it,
otherwise it is printed hex-encoded.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}

	cmd.Flags().String("save-key", "", "Path to save a freshly generated key (raw bytes)")

	return cmd
}
