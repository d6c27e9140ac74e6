// Package vault implements the authenticated encryption pipeline behind
// the personal vault file format:
//
//	IV (16 bytes) || ciphertext (same length as the plaintext) || tag (16 bytes)
//
// Confidentiality comes from AES-CTR, integrity from an AES-CBC-MAC over
// the ciphertext, keyed with the second half of the key material. The MAC
// chaining value is seeded with the same register value that seeds CTR;
// the coupling is a property of the format, not a recommended
// construction. There is no header: one fixed algorithm and key length per
// deployment.
package vault

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/blockcipher"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/cbcmac"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/ctr"
)

const (
	// BlockSize is the cipher block size the format is built around.
	BlockSize = 16

	// KeySize is the required key material length: a cipher sub-key and a
	// MAC sub-key of BlockSize bytes each. The halves are disjoint and
	// never used for each other's purpose.
	KeySize = 2 * BlockSize

	// TagSize is the length of the trailing authentication tag.
	TagSize = BlockSize

	// Overhead is the size encryption adds to a plaintext.
	Overhead = BlockSize + TagSize
)

// Wipe zero-fills b. Key material and recovered plaintext buffers are
// wiped on every exit path, success or failure.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Encrypt reads plaintext from r and writes IV || ciphertext || tag to w.
// key must be exactly KeySize bytes. The output is exactly Overhead bytes
// longer than the plaintext. Any write failure aborts immediately; a
// partially written output must be treated as invalid by the caller. key
// is zero-filled before Encrypt returns, on every path.
func Encrypt(key []byte, r io.Reader, w io.Writer) error {
	defer Wipe(key)

	if len(key) != KeySize {
		return ErrKeyLength
	}

	encBlock, macBlock, err := setupCiphers(key)
	if err != nil {
		return err
	}
	defer encBlock.Destroy()
	defer macBlock.Destroy()

	iv := make([]byte, BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	if _, err := w.Write(iv); err != nil {
		return fmt.Errorf("writing initialization vector: %w", err)
	}

	stream, err := ctr.New(encBlock, iv)
	if err != nil {
		return err
	}
	defer stream.Destroy()

	mac, err := cbcmac.New(macBlock, iv)
	if err != nil {
		return err
	}
	defer mac.Destroy()

	var buf [BlockSize]byte
	defer Wipe(buf[:])

	for {
		n, readErr := io.ReadFull(r, buf[:])
		if n > 0 {
			if err := stream.Crypt(buf[:n], buf[:n]); err != nil {
				return err
			}

			if _, err := w.Write(buf[:n]); err != nil {
				return fmt.Errorf("writing ciphertext: %w", err)
			}

			if err := mac.WriteBlock(buf[:n]); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}

		if readErr != nil {
			return fmt.Errorf("reading plaintext: %w", readErr)
		}
	}

	if _, err := w.Write(mac.Sum(nil)); err != nil {
		return fmt.Errorf("writing authentication tag: %w", err)
	}

	return nil
}

// Decrypt reads IV || ciphertext || tag from r, recomputes the tag, and
// compares it against the stored one in constant time. Only after the tag
// verifies is any plaintext decrypted and written to w; a mismatch returns
// ErrAuthentication with zero bytes released. key is zero-filled before
// Decrypt returns, on every path.
func Decrypt(key []byte, r io.Reader, w io.Writer) error {
	defer Wipe(key)

	if len(key) != KeySize {
		return ErrKeyLength
	}

	encBlock, macBlock, err := setupCiphers(key)
	if err != nil {
		return err
	}
	defer encBlock.Destroy()
	defer macBlock.Destroy()

	iv := make([]byte, BlockSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}

		return fmt.Errorf("reading initialization vector: %w", err)
	}

	// The format carries no length header and verification must precede
	// the release of any plaintext byte, so the remainder is buffered.
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading ciphertext: %w", err)
	}
	defer Wipe(body)

	if len(body) < TagSize {
		return ErrTruncated
	}

	ciphertext, storedTag := body[:len(body)-TagSize], body[len(body)-TagSize:]

	tag, err := computeTag(macBlock, iv, ciphertext)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(tag, storedTag) != 1 {
		return ErrAuthentication
	}

	stream, err := ctr.New(encBlock, iv)
	if err != nil {
		return err
	}
	defer stream.Destroy()

	for off := 0; off < len(ciphertext); off += BlockSize {
		end := min(off+BlockSize, len(ciphertext))

		if err := stream.Crypt(ciphertext[off:end], ciphertext[off:end]); err != nil {
			return err
		}

		if _, err := w.Write(ciphertext[off:end]); err != nil {
			return fmt.Errorf("writing plaintext: %w", err)
		}
	}

	return nil
}

// setupCiphers builds the CTR and MAC block ciphers from the two disjoint
// halves of the key material.
func setupCiphers(key []byte) (encBlock, macBlock blockcipher.Cipher, err error) {
	encBlock, err = blockcipher.NewAES(key[:BlockSize])
	if err != nil {
		return nil, nil, fmt.Errorf("cipher sub-key: %w", err)
	}

	macBlock, err = blockcipher.NewAES(key[BlockSize:])
	if err != nil {
		encBlock.Destroy()

		return nil, nil, fmt.Errorf("mac sub-key: %w", err)
	}

	return encBlock, macBlock, nil
}

// computeTag recomputes the CBC-MAC over ciphertext exactly as encryption
// produced it: full blocks in order, then one short block with filler
// padding if the length is not a multiple of BlockSize. An empty
// ciphertext contributes no blocks, leaving the tag equal to the seeded
// chaining value.
func computeTag(block blockcipher.Cipher, iv, ciphertext []byte) ([]byte, error) {
	mac, err := cbcmac.New(block, iv)
	if err != nil {
		return nil, err
	}
	defer mac.Destroy()

	for off := 0; off < len(ciphertext); off += BlockSize {
		end := min(off+BlockSize, len(ciphertext))

		if err := mac.WriteBlock(ciphertext[off:end]); err != nil {
			return nil, err
		}
	}

	return mac.Sum(nil), nil
}
