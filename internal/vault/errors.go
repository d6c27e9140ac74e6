package vault

import "errors"

var (
	// ErrKeyLength is returned when the key material is not exactly
	// KeySize bytes. It is checked before any I/O begins.
	ErrKeyLength = errors.New("key material must be exactly 32 bytes")

	// ErrRandomSource is returned when IV generation fails. It aborts an
	// encryption before any output byte is written.
	ErrRandomSource = errors.New("random source failure")

	// ErrAuthentication is returned when the stored tag does not match
	// the recomputed tag on decryption. No plaintext is released.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTruncated is returned when the input is shorter than the
	// initialization vector plus the authentication tag.
	ErrTruncated = errors.New("ciphertext truncated")
)
