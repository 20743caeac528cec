// Package password encodes plaintext passwords into tagged, self-describing
// hashes and verifies plaintexts against them. The tag on a stored hash
// decides how it is verified, so hashes produced by older strategies keep
// verifying after the preferred strategy changes.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Scheme selects the strategy used for newly encoded passwords.
type Scheme string

const (
	// SchemeBcrypt is the preferred strategy.
	SchemeBcrypt Scheme = "bcrypt"

	// SchemeSHA256 is a degraded salted-digest strategy for runtimes
	// without a bcrypt implementation. Not recommended for production.
	SchemeSHA256 Scheme = "sha256"
)

const (
	// bcrypt rejects inputs longer than 72 bytes; longer plaintexts are
	// condensed with SHA-256 first.
	bcryptMaxBytes = 72

	preDigestTag = "bcrypt-sha256$"
	fallbackTag  = "sha256$"

	saltBytes = 16
)

// Codec hashes and verifies passwords. Verify accepts every tag variant
// regardless of the configured scheme.
type Codec struct {
	scheme Scheme
	cost   int
}

func New(scheme Scheme) *Codec {
	if scheme != SchemeSHA256 {
		scheme = SchemeBcrypt
	}
	return &Codec{scheme: scheme, cost: bcrypt.DefaultCost}
}

// Encode produces a tagged hash for the plaintext using the configured
// scheme. Plaintexts of any byte length are accepted.
func (c *Codec) Encode(plaintext string) (string, error) {
	if c.scheme == SchemeSHA256 {
		return encodeFallback(plaintext)
	}

	pw := []byte(plaintext)
	if len(pw) > bcryptMaxBytes {
		hash, err := bcrypt.GenerateFromPassword(preDigest(pw), c.cost)
		if err != nil {
			return "", err
		}
		return preDigestTag + string(hash), nil
	}

	hash, err := bcrypt.GenerateFromPassword(pw, c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the tagged hash. Malformed
// or unknown hashes verify as false, never as an error.
func (c *Codec) Verify(plaintext, encoded string) bool {
	switch {
	case strings.HasPrefix(encoded, fallbackTag):
		return verifyFallback(plaintext, encoded)
	case strings.HasPrefix(encoded, preDigestTag):
		hash := []byte(strings.TrimPrefix(encoded, preDigestTag))
		return bcrypt.CompareHashAndPassword(hash, preDigest([]byte(plaintext))) == nil
	default:
		return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext)) == nil
	}
}

// preDigest condenses an over-length plaintext to a fixed 64-byte
// hex digest, keeping it under the bcrypt input limit and NUL-free.
func preDigest(pw []byte) []byte {
	sum := sha256.Sum256(pw)
	return []byte(hex.EncodeToString(sum[:]))
}

func encodeFallback(plaintext string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hexSalt := hex.EncodeToString(salt)
	return fallbackTag + hexSalt + "$" + fallbackDigest(hexSalt, plaintext), nil
}

func verifyFallback(plaintext, encoded string) bool {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return false
	}
	calc := fallbackDigest(parts[1], plaintext)
	return subtle.ConstantTimeCompare([]byte(calc), []byte(parts[2])) == 1
}

func fallbackDigest(hexSalt, plaintext string) string {
	sum := sha256.Sum256([]byte(hexSalt + plaintext))
	return hex.EncodeToString(sum[:])
}
