package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/VishnuVardhan0007/image-encryption/internal/config"
)

// NewRootCommand creates the root command and registers the flags shared
// by the subcommands.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "image-encryption [flags] command [flags]",
		Short: "Encrypt and decrypt images with selectable cipher modes",
		Long: `Encrypts and decrypts arbitrary files (images treated as opaque byte
streams) with AES-256 under CBC, CFB, OFB or CTR mode. Encrypted output
is IV || ciphertext; decryption needs the same key and the same mode.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("mode", "m", "CBC", "Cipher mode: CBC, CFB, OFB or CTR")
	root.PersistentFlags().StringP("key", "k", "", "AES-256 key, hex-encoded (64 characters)")
	root.PersistentFlags().StringP("key-file", "f", "", "Path to a raw 32-byte key file")
	root.PersistentFlags().StringP("output", "o", "", "Output path (single input only)")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")
	root.PersistentFlags().Bool("dry", false, "Preview the files that would be processed")
	root.PersistentFlags().Bool("delete", false, "Delete the input file after successful processing")
	root.PersistentFlags().Bool("preserve-timestamps", false, "Carry the input modification time over to the output")
	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix appended to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix appended to decrypted files, after stripping the encrypted suffix")
	root.PersistentFlags().StringSlice("include", nil, "Patterns a scanned file must match")
	root.PersistentFlags().StringSlice("exclude", nil, "Patterns that remove a scanned file")
	root.PersistentFlags().String("exclude-from", "", "JSONC file with additional exclude patterns")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg), NewKeygenCommand())

	return root
}
