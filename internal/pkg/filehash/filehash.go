// Package filehash computes content digests of uploaded documents.
package filehash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// SumReader computes the SHA-256 digest of everything read from r and
// returns it as a lowercase hex string. The reader is consumed incrementally,
// so arbitrarily large inputs never need to fit in memory.
func SumReader(r io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// SumFile computes the SHA-256 digest of the file at path.
func SumFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return SumReader(file)
}
