package dictionary

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of the word list read from r.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)[:10]), nil
}

// FingerprintFile fingerprints the file at path.
func FingerprintFile(path string) (string, error) {
	f, err := openList(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Fingerprint(f)
}
