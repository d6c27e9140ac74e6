package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/config"
	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/fileutil"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options.
	cfg *config.Config

	// key stores the raw master key material until Close wipes it.
	key []byte

	// results channels processing outcomes to the printer goroutine.
	results chan Result
}

// NewProcessor creates a Processor with the given configuration, loading
// the key material from the inline hex string or the key file.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	var (
		material []byte
		err      error
	)

	switch {
	case cfg.Key.String != "":
		material, err = key.FromHex(cfg.Key.String)
	case cfg.Key.File != "":
		var raw []byte

		raw, err = os.ReadFile(cfg.Key.File)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		material, err = key.FromHex(strings.TrimSpace(string(raw)))
	}

	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	if len(material) != KeySize {
		return nil, ErrKeyLength
	}

	return &Processor{
		cfg:     cfg,
		key:     material,
		results: make(chan Result, len(cfg.Files)),
	}, nil
}

// Close wipes the processor's master key material.
func (p *Processor) Close() {
	Wipe(p.key)
}

// keyCopy hands each file task its own key buffer, since Encrypt and
// Decrypt wipe the key they are given.
func (p *Processor) keyCopy() []byte {
	k := make([]byte, len(p.key))
	copy(k, p.key)

	return k
}

// ProcessFiles concurrently encrypts or decrypts all configured files.
// Returns the number of successfully processed files, the number of
// errors, and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Printf("Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish.

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts a single file, writing the output
// atomically via a temp file that is renamed into place on success.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	tc, err := fileutil.NewTempContext(filename, outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	if p.cfg.Decrypt {
		if err := Decrypt(p.keyCopy(), inFile, tc.TmpFile); err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		if err := Encrypt(p.keyCopy(), inFile, tc.TmpFile); err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	const ownerReadWrite = 0o600

	if err := os.Chmod(tc.TmpName, ownerReadWrite); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tc.Commit(outPath); err != nil {
		return 0, err
	}

	size, err = fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

// outputPath derives the output file path from the input filename and the
// configured suffixes.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
