package models

import "time"

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a booking of one service by one customer. Referenced rows must
// exist at creation time; deleting a referenced customer or service is
// restricted by the foreign key constraints.
type Order struct {
	// ID is the unique identifier for the order.
	ID uint `gorm:"primaryKey"`
	// CustomerID is the customer the order belongs to.
	CustomerID uint `gorm:"not null"`
	// Customer is the associated customer row.
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE"`
	// ServiceID is the ordered service.
	ServiceID uint `gorm:"not null"`
	// Service is the associated service row.
	Service Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE"`
	// OrderDate is when the order was placed.
	OrderDate time.Time
	// Status is one of pending, confirmed, completed, cancelled.
	Status string `gorm:"size:20;default:pending"`
	// TotalAmount is the order total in rupees.
	TotalAmount float64
	// Notes holds free-text remarks.
	Notes string `gorm:"type:text"`
	// CreatedAt is the timestamp when the order was created (managed by GORM).
	CreatedAt time.Time
}
