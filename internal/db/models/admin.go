package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Admin represents the back-office administrator account.
// There is a single permission level: an admin can do everything.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID uint `gorm:"primaryKey"`
	// Username is the unique login name.
	Username string `gorm:"unique;size:80;not null"`
	// PasswordHash is the Argon2id hashed password.
	PasswordHash string `gorm:"size:255;not null"`
	// CreatedAt is the timestamp when the admin was created (managed by GORM).
	CreatedAt time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the admin's stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (a *Admin) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, a.PasswordHash)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
