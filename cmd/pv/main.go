// Command pv encrypts and decrypts personal vault files.
package main

import (
	"fmt"
	"os"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/commands"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/config"
)

// version is set at build time.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pv:", err)
		os.Exit(1)
	}
}
