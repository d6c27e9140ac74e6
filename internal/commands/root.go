package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "pv [flags] command [flags]"
	root.Short = "Personal vault file encryption utility"
	root.Long = `Encrypts and decrypts files using AES-CTR with a trailing AES-CBC-MAC
authentication tag, and provides the matching SHA-1 and HMAC-SHA1 digests.
Provides commands for key generation, encryption, decryption, and digests.`

	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")
	root.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.Flags().Bool("stats", false, "Print a processing summary")
	root.Flags().Bool("dry-run", false, "Preview the files that would be processed")
	root.Flags().Bool("preserve-timestamps", false, "Copy the input's modification time to the output")

	root.Flags().StringP("key", "k", "", "Encryption key (32 bytes, hex-encoded)")
	root.Flags().
		StringP("key-file", "f", "", "Path to the key file with the encryption key (32 bytes, hex-encoded)")

	root.Flags().String("encrypt-ext", ".pv", "Suffix to append to encrypted files")
	root.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.Flags().StringSliceP("include", "i", nil, "Glob patterns selecting files inside walked directories")
	root.Flags().StringSliceP("exclude", "e", nil, "Glob patterns removing files from the selection")
	root.Flags().String("include-from", "", "JSONC file with additional include patterns")
	root.Flags().String("exclude-from", "", "JSONC file with additional exclude patterns")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewGenerateCommand(),
		NewDigestCommand(),
		NewMacCommand(),
	)

	return root
}
