package models

import "time"

// Customer is referenced by orders. IsBlacklisted marks a customer as
// excluded from future business; it is informational only.
type Customer struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	Email         string `gorm:"size:100"`
	Phone         string `gorm:"size:20"`
	Address       string `gorm:"type:text"`
	IsBlacklisted bool   `gorm:"default:false"`
	CreatedAt     time.Time
}
