package cache

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/zeebo/blake3"
)

const otpKeyContext = "bond-portal 2026-10 otp-at-rest v1"

// CodeHasher hashes one-time codes before they are stored. The digest binds the
// offer id so a stored hash cannot be replayed against another offer.
type CodeHasher struct {
	key [32]byte
}

func NewCodeHasher(secret string) *CodeHasher {
	h := &CodeHasher{}
	blake3.DeriveKey(otpKeyContext, []byte(secret), h.key[:])
	return h
}

func (h *CodeHasher) Hash(offerID, code string) string {
	hasher, err := blake3.NewKeyed(h.key[:])
	if err != nil {
		panic("cache: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	_, _ = hasher.Write([]byte(offerID))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(code))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Matches compares the stored digest with the digest of the submitted code in constant time.
func (h *CodeHasher) Matches(storedHash, offerID, code string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(h.Hash(offerID, code))) == 1
}

var otpRange = big.NewInt(900000)

// generateCode returns a uniformly random code in 100000..999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpRange)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
