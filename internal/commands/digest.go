package commands

import (
	"github.com/spf13/cobra"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/logic"
)

// NewDigestCommand creates a new cobra command for the digest subcommand.
func NewDigestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "digest [files...]",
		Aliases: []string{"dig"},
		Short:   "Print the SHA-1 digest of files or standard input",
		Args:    cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return logic.RunDigest(args)
		},
	}
}
