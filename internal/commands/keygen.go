package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VishnuVardhan0007/image-encryption/internal/encryption"
)

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
// With a path argument the raw key bytes are written there; otherwise the
// key is printed hex-encoded.
func NewKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "keygen [file]",
		Aliases: []string{"gen"},
		Short:   "Generate a new AES-256 key",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := encryption.GenerateKey()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := encryption.SaveKey(key, args[0]); err != nil {
					return err
				}

				fmt.Printf("Key saved to %q\n", args[0])

				return nil
			}

			fmt.Println(hex.EncodeToString(key))

			return nil
		},
	}
}
