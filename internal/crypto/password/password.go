// Package password provides one-way hashing for user credentials.
//
// Hashing always produces bcrypt, which embeds its own salt and cost in
// the output string. Verify additionally recognizes the unsalted hex
// SHA-256 digests written by an older build, so an existing store stays
// readable after an upgrade.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const legacyDigestLen = 64 // hex-encoded SHA-256

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Bcrypt hashes with a configurable cost.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed or empty
// hash yields false, never an error.
func (b *Bcrypt) Verify(password, hash string) bool {
	if isLegacyDigest(hash) {
		sum := sha256.Sum256([]byte(password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) == 1
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func isLegacyDigest(hash string) bool {
	if len(hash) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
