package commands

import (
	"github.com/spf13/cobra"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/config"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [paths/patterns...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg)
		},
	}
}
