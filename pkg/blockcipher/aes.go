package blockcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesCipher adapts crypto/aes to the Cipher contract. It holds a private
// copy of the key so Destroy can wipe it.
type aesCipher struct {
	block cipher.Block
	key   []byte
}

// NewAES returns an AES block cipher for the given key. The key is copied;
// the caller's buffer may be wiped immediately after the call.
func NewAES(key []byte) (Cipher, error) {
	k := make([]byte, len(key))
	copy(k, key)

	block, err := aes.NewCipher(k)
	if err != nil {
		for i := range k {
			k[i] = 0
		}

		return nil, fmt.Errorf("creating AES cipher: %w", err)
	}

	return &aesCipher{block: block, key: k}, nil
}

func (c *aesCipher) BlockSize() int {
	return c.block.BlockSize()
}

func (c *aesCipher) EncryptBlock(dst, src []byte) {
	c.block.Encrypt(dst, src)
}

// Destroy zeroes the held key copy and drops the expanded key schedule.
func (c *aesCipher) Destroy() {
	for i := range c.key {
		c.key[i] = 0
	}

	c.block = nil
}
