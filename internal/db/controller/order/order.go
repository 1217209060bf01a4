// Package order provides CRUD operations for service orders.
package order

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrReferentNotFound is returned when the customer or service an order
	// points at does not exist.
	ErrReferentNotFound = errors.New("order customer or service not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new order after checking that both referenced rows
// exist. An order always references exactly one customer and one service.
func Create(db *gorm.DB, o *models.Order) error {
	if db == nil {
		return ErrDBNil
	}

	var customer models.Customer
	if err := db.First(&customer, o.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferentNotFound
		}
		return err
	}

	var service models.Service
	if err := db.First(&service, o.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReferentNotFound
		}
		return err
	}

	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}

	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}

	return db.Create(o).Error
}

// List returns all orders, newest first, with their customer and service
// rows preloaded for the joined admin listing.
func List(db *gorm.DB) ([]models.Order, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var orders []models.Order
	result := db.Preload("Customer").Preload("Service").
		Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

// UpdateStatus sets a new status on the order with the given id.
func UpdateStatus(db *gorm.DB, id uint, status string) error {
	if db == nil {
		return ErrDBNil
	}

	var o models.Order
	if err := db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	o.Status = status

	return db.Save(&o).Error
}
