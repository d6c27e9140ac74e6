package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/logic"
)

// NewMacCommand creates a new cobra command for the mac subcommand.
func NewMacCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mac [flags] [files...]",
		Short: "Print the HMAC-SHA1 tag of files or standard input",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hexKey, err := cmd.Flags().GetString("mac-key")
			if err != nil {
				return err
			}

			if hexKey == "" {
				return errors.New("mac: a key is required (--mac-key)")
			}

			material, err := key.FromHex(hexKey)
			if err != nil {
				return err
			}

			return logic.RunMAC(material, args)
		},
	}

	cmd.Flags().String("mac-key", "", "MAC key, hex-encoded (any length)")

	return cmd
}
