// Package ctr implements counter-mode keystream encryption over a block
// cipher: each register value is encrypted to produce one keystream block,
// which is XORed with the data. The register increment rule matches the
// vault file format and differs from standard big-endian counters; see
// (*Cipher).advance.
package ctr

import (
	"crypto/subtle"
	"fmt"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/blockcipher"
)

// carryBoundary is the 8-bit signed wraparound value (-128 viewed as an
// unsigned byte). A carry propagates into the next register byte only when
// an incremented byte lands exactly on it.
const carryBoundary = 0x80

// Cipher turns a block cipher into a stream cipher via an incrementing
// register. Not safe for concurrent use.
type Cipher struct {
	block     blockcipher.Cipher
	register  []byte
	keystream []byte
}

// New returns a Cipher whose register is seeded with iv. iv must be exactly
// one block long and is copied.
func New(block blockcipher.Cipher, iv []byte) (*Cipher, error) {
	size := block.BlockSize()
	if len(iv) != size {
		return nil, fmt.Errorf("ctr: register must be %d bytes, got %d", size, len(iv))
	}

	c := &Cipher{
		block:     block,
		register:  make([]byte, size),
		keystream: make([]byte, size),
	}
	copy(c.register, iv)

	return c, nil
}

// Crypt XORs src with one keystream block into dst and advances the
// register exactly once. A chunk shorter than the block size discards the
// excess keystream bytes; they are never carried into the next call. The
// same operation encrypts and decrypts. dst and src may overlap. len(src)
// must not exceed the block size.
func (c *Cipher) Crypt(dst, src []byte) error {
	if len(src) > len(c.keystream) {
		return fmt.Errorf("ctr: chunk of %d bytes exceeds block size %d", len(src), len(c.keystream))
	}

	c.block.EncryptBlock(c.keystream, c.register)
	subtle.XORBytes(dst[:len(src)], src, c.keystream[:len(src)])
	c.advance()

	return nil
}

// advance steps the register: byte 0 increments modulo 256, and the carry
// ripples into the following byte only while each incremented byte equals
// the signed wraparound boundary. Note that a byte wrapping from 0xff to
// 0x00 does not carry; only hitting 0x80 does. This replicates the format's
// original signed-char arithmetic with defined unsigned operations.
func (c *Cipher) advance() {
	for i := range c.register {
		c.register[i]++
		if c.register[i] != carryBoundary {
			break
		}
	}
}

// Destroy wipes the register and the last generated keystream block. The
// underlying block cipher remains owned by the caller.
func (c *Cipher) Destroy() {
	for i := range c.register {
		c.register[i] = 0
	}

	for i := range c.keystream {
		c.keystream[i] = 0
	}
}
