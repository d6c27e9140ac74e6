// Package hmacsha1 implements HMAC keyed via the vault's incremental
// SHA-1, as a two-pass construction over inner and outer padded keys.
//
// Key bytes beyond the 64-byte pad are ignored rather than pre-hashed,
// matching the vault's keyed-digest format; callers needing full HMAC
// semantics for long keys must hash the key themselves first.
package hmacsha1

import (
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/sha1"
)

// Size is the tag length in bytes.
const Size = sha1.Size

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// MAC is a streaming HMAC-SHA1 computation: the inner padded key is
// absorbed at construction, the message is streamed via Write, and
// Finalize folds the inner digest through the outer pass. Not safe for
// concurrent use.
type MAC struct {
	inner *sha1.Digest
	opad  [sha1.BlockSize]byte
}

// New returns a MAC keyed with key. The inner pad is already absorbed;
// the caller's key buffer may be wiped after the call.
func New(key []byte) *MAC {
	m := &MAC{inner: sha1.New()}

	var ipad [sha1.BlockSize]byte

	for i := range ipad {
		ipad[i] = ipadByte
		m.opad[i] = opadByte
	}

	for i := 0; i < len(ipad) && i < len(key); i++ {
		ipad[i] ^= key[i]
		m.opad[i] ^= key[i]
	}

	m.inner.Write(ipad[:])

	for i := range ipad {
		ipad[i] = 0
	}

	return m
}

// Write streams message bytes into the inner hash. It never fails; the
// error return satisfies io.Writer.
func (m *MAC) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Finalize completes both hash passes and returns the tag. The stored
// outer pad is wiped; the MAC cannot be reused afterwards.
func (m *MAC) Finalize() [Size]byte {
	digest1 := m.inner.Finalize()

	outer := sha1.New()
	outer.Write(m.opad[:])
	outer.Write(digest1[:])

	for i := range m.opad {
		m.opad[i] = 0
	}

	return outer.Finalize()
}

// Sum computes the HMAC-SHA1 of msg under key in one shot.
func Sum(key, msg []byte) [Size]byte {
	m := New(key)
	m.Write(msg)

	return m.Finalize()
}
