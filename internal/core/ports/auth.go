package ports

import (
	"cardmarket/internal/core/domain/model/kernel"
)

// PasswordHasher hashes plaintext passwords and verifies them in constant
// time.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	Verify(password, hash string) (bool, error)
}

// TokenSigner issues and verifies the bearer tokens intermediaries
// authenticate with.
type TokenSigner interface {
	// Sign issues a token for the given intermediary.
	Sign(intermediaryID kernel.UUID) (string, error)

	// Verify parses a token and returns the intermediary it was issued to.
	Verify(token string) (kernel.UUID, error)
}
