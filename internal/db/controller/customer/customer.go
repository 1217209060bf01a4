// Package customer provides CRUD operations for customers.
package customer

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new customer.
func Create(db *gorm.DB, c *models.Customer) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(c).Error
}

// List returns all customers, newest first.
func List(db *gorm.DB) ([]models.Customer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var customers []models.Customer
	result := db.Order("created_at DESC").Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}

	return customers, nil
}

// GetByID retrieves a customer by its id.
func GetByID(db *gorm.DB, id uint) (*models.Customer, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var c models.Customer
	result := db.First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, result.Error
	}

	return &c, nil
}

// ToggleBlacklist flips the blacklist flag of the customer with the given
// id and returns the new state. There is no separate set/unset operation.
func ToggleBlacklist(db *gorm.DB, id uint) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	c, err := GetByID(db, id)
	if err != nil {
		return false, err
	}

	c.IsBlacklisted = !c.IsBlacklisted
	if err := db.Save(c).Error; err != nil {
		return false, err
	}

	return c.IsBlacklisted, nil
}
