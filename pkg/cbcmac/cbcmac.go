// Package cbcmac implements a block-cipher-chained message authentication
// code: every message block is XORed into a chaining value which is then
// encrypted, and the final chaining value is the tag.
package cbcmac

import (
	"errors"
	"fmt"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/blockcipher"
)

// Filler is XORed into the unused tail positions of a short final block
// before MAC-ing. The padding exists only inside the MAC computation and is
// never written to the ciphertext stream.
const Filler = '0'

// ErrShortBlock is returned when a block is written after a short final
// block has already closed the message.
var ErrShortBlock = errors.New("cbcmac: write after short final block")

// MAC accumulates a chained tag over message blocks. Not safe for
// concurrent use.
type MAC struct {
	block   blockcipher.Cipher
	chain   []byte
	scratch []byte
	closed  bool
}

// New returns a MAC whose chaining value is seeded with iv. iv must be
// exactly one block long and is copied.
func New(block blockcipher.Cipher, iv []byte) (*MAC, error) {
	size := block.BlockSize()
	if len(iv) != size {
		return nil, fmt.Errorf("cbcmac: chaining value must be %d bytes, got %d", size, len(iv))
	}

	m := &MAC{
		block:   block,
		chain:   make([]byte, size),
		scratch: make([]byte, size),
	}
	copy(m.chain, iv)

	return m, nil
}

// WriteBlock folds one message chunk into the chaining value. A chunk
// shorter than the block size closes the message: the remaining positions
// are XORed with Filler instead of message bytes, and any further write
// returns ErrShortBlock.
func (m *MAC) WriteBlock(p []byte) error {
	if m.closed {
		return ErrShortBlock
	}

	if len(p) > len(m.chain) {
		return fmt.Errorf("cbcmac: chunk of %d bytes exceeds block size %d", len(p), len(m.chain))
	}

	for i, b := range p {
		m.scratch[i] = m.chain[i] ^ b
	}

	if len(p) < len(m.chain) {
		m.closed = true

		for i := len(p); i < len(m.chain); i++ {
			m.scratch[i] = m.chain[i] ^ Filler
		}
	}

	m.block.EncryptBlock(m.chain, m.scratch)

	return nil
}

// Sum appends the current tag to dst and returns the result. A message
// with no blocks written yields the seeded chaining value unchanged.
func (m *MAC) Sum(dst []byte) []byte {
	return append(dst, m.chain...)
}

// Size returns the tag length in bytes.
func (m *MAC) Size() int {
	return len(m.chain)
}

// Destroy wipes the chaining state. The underlying block cipher remains
// owned by the caller.
func (m *MAC) Destroy() {
	for i := range m.chain {
		m.chain[i] = 0
	}

	for i := range m.scratch {
		m.scratch[i] = 0
	}
}
