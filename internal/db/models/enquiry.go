// Package models contains database model definitions.
package models

import "time"

// Enquiry statuses.
const (
	EnquiryStatusPending = "pending"

	// EnquiryTypeService marks enquiries submitted through a service modal.
	EnquiryTypeService = "service"
	// EnquiryTypeGeneral is the default type for the public enquiry form.
	EnquiryTypeGeneral = "general"
)

// Enquiry is a public lead submitted through the enquiry form or a
// service-detail modal.
type Enquiry struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Email       string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:20;not null"`
	Message     string `gorm:"type:text;not null"`
	EnquiryType string `gorm:"size:50"`
	Status      string `gorm:"size:20;default:pending"`
	CreatedAt   time.Time
}
