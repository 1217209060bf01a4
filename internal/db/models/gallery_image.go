package models

import "time"

// GalleryImage references an uploaded image in the upload directory.
// The file is stored by filename only, no subdirectories.
type GalleryImage struct {
	ID         uint   `gorm:"primaryKey"`
	Filename   string `gorm:"size:255;not null"`
	Caption    string `gorm:"size:255"`
	Category   string `gorm:"size:50"`
	UploadedAt time.Time
}
