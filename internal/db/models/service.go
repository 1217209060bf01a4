package models

import "time"

// Service is a catalog item shown publicly while active, ordered by
// DisplayOrder ascending. Price is free text ("₹ 9/Piece", "Contact for
// Price"), so no numeric column.
type Service struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:100;not null"`
	Description  string `gorm:"type:text"`
	Price        string `gorm:"size:50"`
	Features     string `gorm:"type:text"`
	Image        string `gorm:"size:255"`
	IsActive     bool   `gorm:"default:true"`
	DisplayOrder int    `gorm:"default:0"`
	CreatedAt    time.Time
}
