package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength caps password input at bcrypt's own 72-byte limit.
// Longer inputs are rejected up front instead of being silently truncated.
const MaxPasswordLength = 72

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds
// MaxPasswordLength.
var ErrPasswordTooLong = errors.New("password exceeds maximum length")

// PasswordHasher wraps bcrypt with a fixed cost factor. The cost is chosen
// once at startup; callers never pass it per call.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost. Costs
// outside bcrypt's supported range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted digest from plaintext. bcrypt generates a fresh salt
// on every call, so hashing the same password twice yields different digests.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Verify reports whether plaintext matches the digest. The comparison is
// constant-time inside bcrypt and the result carries no detail about why a
// mismatch occurred.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
