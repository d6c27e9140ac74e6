// Package config defines the runtime configuration for the pv tool.
package config

// Key holds the encryption key as either an inline hex string or a path
// to a file containing one. The two are mutually exclusive.
type Key struct {
	// String is the hex-encoded key material (64 hex characters).
	String string `label:"key"      mapstructure:"key"      validate:"omitempty,hexadecimal,len=64"`

	// File is the path to a file holding the hex-encoded key material.
	File string `label:"key-file" mapstructure:"key-file" validate:"omitempty,excluded_with=String"`
}

// Suffixes control the file name transformations applied to outputs.
type Suffixes struct {
	// Encrypt is appended to encrypted output files.
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted output files, after stripping the
	// encrypted suffix.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config holds all runtime configuration options.
type Config struct {
	// Show prints the configuration and exits.
	Show bool

	// Parallel is the number of concurrent file workers.
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool

	// Delete removes the input file after successful processing.
	Delete bool

	// Stats prints a processing summary.
	Stats bool

	// Dry previews what would be processed without touching any file.
	Dry bool `mapstructure:"dry-run"`

	// PreserveTimestamps copies the input's modification time to the output.
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Key is the encryption key source.
	Key Key `mapstructure:",squash"`

	// Suffixes are the output file name suffixes.
	Suffixes Suffixes `mapstructure:",squash"`

	// Include holds glob patterns selecting files inside walked directories.
	Include []string

	// Exclude holds glob patterns removing files from the selection.
	Exclude []string

	// IncludeFrom is a JSONC file holding additional include patterns.
	IncludeFrom string `mapstructure:"include-from"`

	// ExcludeFrom is a JSONC file holding additional exclude patterns.
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Decrypt selects decryption instead of encryption.
	Decrypt bool

	// Files are the resolved positional arguments.
	Files []string `validate:"min=1"`
}
