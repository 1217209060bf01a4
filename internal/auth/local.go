package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

// LocalProvider handles administrator authentication against the local database.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate matches the username exactly against stored records and
// verifies the password against the stored Argon2id hash.
func (p *LocalProvider) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin

	err := p.db.Where("username = ?", username).First(&admin).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if !admin.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return &admin, nil
}

// CreateAdmin creates a new administrator account.
func (p *LocalProvider) CreateAdmin(username, password string) (*models.Admin, error) {
	var existing models.Admin

	err := p.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrAdminExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}

	admin := models.Admin{
		Username:     username,
		PasswordHash: models.HashPassword(password),
	}

	if err := p.db.Create(&admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return &admin, nil
}

// ChangePassword replaces the stored password hash after verifying the old password.
func (p *LocalProvider) ChangePassword(adminID uint, oldPassword, newPassword string) error {
	var admin models.Admin
	if err := p.db.First(&admin, adminID).Error; err != nil {
		return fmt.Errorf("admin not found: %w", err)
	}

	if !admin.VerifyPassword(oldPassword) {
		return ErrInvalidPassword
	}

	return p.db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Update("password_hash", models.HashPassword(newPassword)).Error
}
