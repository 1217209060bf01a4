// Package enquiry provides CRUD operations for public enquiries.
package enquiry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

var (
	// ErrEnquiryNotFound is returned when an enquiry is not found.
	ErrEnquiryNotFound = errors.New("enquiry not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new enquiry with status "pending".
func Create(db *gorm.DB, e *models.Enquiry) error {
	if db == nil {
		return ErrDBNil
	}

	if e.Status == "" {
		e.Status = models.EnquiryStatusPending
	}

	return db.Create(e).Error
}

// List returns all enquiries, newest first.
func List(db *gorm.DB) ([]models.Enquiry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var enquiries []models.Enquiry
	result := db.Order("created_at DESC").Find(&enquiries)
	if result.Error != nil {
		return nil, result.Error
	}

	return enquiries, nil
}

// GetByID retrieves an enquiry by its id.
func GetByID(db *gorm.DB, id uint) (*models.Enquiry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var e models.Enquiry
	result := db.First(&e, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, result.Error
	}

	return &e, nil
}

// UpdateStatus sets a new status on the enquiry with the given id.
// Only the status field is mutable through the admin endpoint.
func UpdateStatus(db *gorm.DB, id uint, status string) error {
	if db == nil {
		return ErrDBNil
	}

	var e models.Enquiry
	if err := db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnquiryNotFound
		}
		return err
	}

	e.Status = status

	return db.Save(&e).Error
}

// Delete removes the enquiry with the given id.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Enquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}

	return nil
}

// Count returns the total number of enquiries.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Enquiry{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// CountByStatus returns the number of enquiries with the given status.
func CountByStatus(db *gorm.DB, status string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Enquiry{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
