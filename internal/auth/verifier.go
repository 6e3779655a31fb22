package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks one identity/secret pair.
type Verifier interface {
	Verify(id, secret string) bool
}

// bcrypt only looks at the first 72 bytes of input
const maxSecretBytes = 72

// BcryptVerifier checks secrets against stored bcrypt hashes keyed by identity.
type BcryptVerifier struct {
	hashes map[string][]byte
}

var _ Verifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier builds a verifier from identity -> bcrypt hash pairs.
// Entries with an empty hash are ignored, so an unconfigured identity never verifies.
func NewBcryptVerifier(hashes map[string]string) (*BcryptVerifier, error) {
	v := &BcryptVerifier{hashes: make(map[string][]byte, len(hashes))}
	for id, hash := range hashes {
		if hash == "" {
			continue
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid bcrypt hash for %q: %w", id, err)
		}
		v.hashes[id] = []byte(hash)
	}
	return v, nil
}

func (v *BcryptVerifier) Verify(id, secret string) bool {
	hash, ok := v.hashes[id]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, truncate(secret)) == nil
}

// HashSecret produces a bcrypt hash suitable for config files.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hash), nil
}

func truncate(secret string) []byte {
	b := []byte(secret)
	if len(b) > maxSecretBytes {
		b = b[:maxSecretBytes]
	}
	return b
}
