// Package gallery provides CRUD operations for gallery images.
package gallery

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

var (
	// ErrImageNotFound is returned when a gallery image is not found.
	ErrImageNotFound = errors.New("gallery image not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new gallery image row.
func Create(db *gorm.DB, img *models.GalleryImage) error {
	if db == nil {
		return ErrDBNil
	}

	if img.UploadedAt.IsZero() {
		img.UploadedAt = time.Now()
	}

	return db.Create(img).Error
}

// List returns all gallery images, newest upload first.
func List(db *gorm.DB) ([]models.GalleryImage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var images []models.GalleryImage
	result := db.Order("uploaded_at DESC").Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	return images, nil
}

// GetByID retrieves a gallery image by its id.
func GetByID(db *gorm.DB, id uint) (*models.GalleryImage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var img models.GalleryImage
	result := db.First(&img, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, result.Error
	}

	return &img, nil
}

// Delete removes the gallery image row with the given id.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.GalleryImage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}

// Count returns the total number of gallery images.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.GalleryImage{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
