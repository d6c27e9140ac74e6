package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/vault"
)

// NewGenerateCommand creates a new cobra command for the generate
// subcommand.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			material := make([]byte, vault.KeySize)
			if _, err := rand.Read(material); err != nil {
				return fmt.Errorf("generating key: %w", err)
			}

			fmt.Println(hex.EncodeToString(material))

			return nil
		},
	}
}
