package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/starlog/catalog-api/internal/core/domain"
)

// HashPassword hashes a plaintext password with bcrypt. The salt is random
// per call and the default cost keeps hashing in the tens of milliseconds.
// Inputs longer than 72 bytes cannot be encoded and fail with
// domain.ErrPasswordEncoding.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on inputs it cannot encode (e.g. >72 bytes).
		return "", domain.ErrPasswordEncoding
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time. Any failure, including a corrupt stored
// hash, reads as a plain mismatch so callers cannot tell the cases apart.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// dummyHash is a valid bcrypt hash of a random throwaway value. Comparing
// against it keeps login latency flat when the email does not exist.
var dummyHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("catalog-api-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// burnPasswordCheck performs a bcrypt comparison that always fails, costing
// the same as a real verification.
func burnPasswordCheck(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
