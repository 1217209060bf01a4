// Package service provides CRUD operations for the service catalog.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new service.
func Create(db *gorm.DB, s *models.Service) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(s).Error
}

// ListActive returns active services sorted ascending by display order.
// This is the ordering every public page uses.
func ListActive(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service
	result := db.Where("is_active = ?", true).Order("display_order").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// ListAll returns every service ordered by display order, then title.
func ListAll(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service
	result := db.Order("display_order").Order("title").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}

	return services, nil
}

// GetByID retrieves a service by its id.
func GetByID(db *gorm.DB, id uint) (*models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.Service
	result := db.First(&s, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// Save writes back a mutated service row.
func Save(db *gorm.DB, s *models.Service) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Save(s).Error
}

// Delete removes the service row with the given id.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Count returns the total number of services.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
