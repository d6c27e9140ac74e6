package logic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/hmacsha1"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/pkg/sha1"
)

// RunDigest streams each file (or stdin when no files are given) through
// the incremental SHA-1 and prints one digest line per input.
func RunDigest(files []string) error {
	return eachInput(files, func(r io.Reader, name string) error {
		d := sha1.New()

		if _, err := io.Copy(d, r); err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		fmt.Printf("%x  %s\n", d.Finalize(), name)

		return nil
	})
}

// RunMAC streams each file (or stdin when no files are given) through
// HMAC-SHA1 under key and prints one tag line per input.
func RunMAC(key []byte, files []string) error {
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	return eachInput(files, func(r io.Reader, name string) error {
		m := hmacsha1.New(key)

		if _, err := io.Copy(m, r); err != nil {
			return fmt.Errorf("reading %q: %w", name, err)
		}

		fmt.Printf("%x  %s\n", m.Finalize(), name)

		return nil
	})
}

// eachInput applies fn to every named file, or to stdin (named "-") when
// files is empty.
func eachInput(files []string, fn func(r io.Reader, name string) error) error {
	if len(files) == 0 {
		return fn(os.Stdin, "-")
	}

	for _, file := range files {
		f, err := os.Open(filepath.Clean(file))
		if err != nil {
			return fmt.Errorf("opening %q: %w", file, err)
		}

		err = fn(f, file)

		f.Close()

		if err != nil {
			return err
		}
	}

	return nil
}
