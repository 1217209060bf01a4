package order

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Customer{}, &models.Service{}, &models.Order{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedReferents(t *testing.T, db *gorm.DB) (models.Customer, models.Service) {
	t.Helper()

	customer := models.Customer{Name: "Ravi Kumar", Phone: "9876543210"}
	require.NoError(t, db.Create(&customer).Error)

	service := models.Service{Title: "1 Number Bricks", IsActive: true}
	require.NoError(t, db.Create(&service).Error)

	return customer, service
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	customer, service := seedReferents(t, db)

	t.Run("nil database", func(t *testing.T) {
		assert.ErrorIs(t, Create(nil, &models.Order{}), ErrDBNil)
	})

	t.Run("missing customer", func(t *testing.T) {
		o := models.Order{CustomerID: 999, ServiceID: service.ID}
		assert.ErrorIs(t, Create(db, &o), ErrReferentNotFound)
	})

	t.Run("missing service", func(t *testing.T) {
		o := models.Order{CustomerID: customer.ID, ServiceID: 999}
		assert.ErrorIs(t, Create(db, &o), ErrReferentNotFound)
	})

	t.Run("defaults status and date", func(t *testing.T) {
		o := models.Order{CustomerID: customer.ID, ServiceID: service.ID, TotalAmount: 4500}

		require.NoError(t, Create(db, &o))
		assert.NotZero(t, o.ID)
		assert.Equal(t, models.OrderStatusPending, o.Status)
		assert.False(t, o.OrderDate.IsZero())
	})
}

func TestList(t *testing.T) {
	db := setupTestDB(t)
	customer, service := seedReferents(t, db)

	t.Run("nil database", func(t *testing.T) {
		orders, err := List(nil)
		assert.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, orders)
	})

	t.Run("preloads referents newest first", func(t *testing.T) {
		older := models.Order{
			CustomerID: customer.ID, ServiceID: service.ID,
			OrderDate: time.Now(), CreatedAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, db.Create(&older).Error)

		newer := models.Order{
			CustomerID: customer.ID, ServiceID: service.ID,
			OrderDate: time.Now(), CreatedAt: time.Now(),
		}
		require.NoError(t, db.Create(&newer).Error)

		orders, err := List(db)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, newer.ID, orders[0].ID)
		assert.Equal(t, "Ravi Kumar", orders[0].Customer.Name)
		assert.Equal(t, "1 Number Bricks", orders[0].Service.Title)
	})
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	customer, service := seedReferents(t, db)

	t.Run("nil database", func(t *testing.T) {
		assert.ErrorIs(t, UpdateStatus(nil, 1, models.OrderStatusConfirmed), ErrDBNil)
	})

	t.Run("order not found", func(t *testing.T) {
		assert.ErrorIs(t, UpdateStatus(db, 999, models.OrderStatusConfirmed), ErrOrderNotFound)
	})

	t.Run("successful update", func(t *testing.T) {
		o := models.Order{CustomerID: customer.ID, ServiceID: service.ID}
		require.NoError(t, Create(db, &o))

		require.NoError(t, UpdateStatus(db, o.ID, models.OrderStatusCompleted))

		var got models.Order
		require.NoError(t, db.First(&got, o.ID).Error)
		assert.Equal(t, models.OrderStatusCompleted, got.Status)
	})
}
