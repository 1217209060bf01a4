// Package contact provides operations for messages from the contact page.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Create persists a new contact message with status "unread".
func Create(db *gorm.DB, m *models.ContactMessage) error {
	if db == nil {
		return ErrDBNil
	}

	if m.Status == "" {
		m.Status = models.ContactMessageStatusUnread
	}

	return db.Create(m).Error
}

// Count returns the total number of contact messages.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
