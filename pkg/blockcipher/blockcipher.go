// Package blockcipher defines the minimal block cipher contract the vault
// primitives are built on: key setup, single-block encryption, and explicit
// destruction of the key material. Any cipher satisfying the contract with
// a matching block size is substitutable.
package blockcipher

// Cipher is a block cipher usable for keystream generation and MAC
// chaining. EncryptBlock must be deterministic. A destroyed Cipher must not
// be used again.
type Cipher interface {
	// BlockSize returns the cipher block size in bytes.
	BlockSize() int

	// EncryptBlock encrypts exactly one block from src into dst.
	// Both slices must be at least BlockSize bytes long; they may overlap.
	EncryptBlock(dst, src []byte)

	// Destroy wipes the cipher's copy of the key material.
	Destroy()
}
