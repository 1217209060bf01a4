package service

import (
	"testing"

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

	err = db.AutoMigrate(&models.Service{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	services := []models.Service{
		{Title: "Industrial Chimneys", IsActive: true, DisplayOrder: 4},
		{Title: "1 Number Bricks", IsActive: true, DisplayOrder: 1},
		{Title: "Piket Red Brick", IsActive: false, DisplayOrder: 3},
		{Title: "2 Number Bricks", IsActive: true, DisplayOrder: 2},
	}
	for i := range services {
		require.NoError(t, db.Create(&services[i]).Error)
	}
}

func TestListActive(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		services, err := ListActive(nil)
		assert.ErrorIs(t, err, ErrDBNil)
		assert.Nil(t, services)
	})

	t.Run("hides inactive, sorts by display order", func(t *testing.T) {
		db := setupTestDB(t)
		seedCatalog(t, db)

		services, err := ListActive(db)
		require.NoError(t, err)
		require.Len(t, services, 3)
		assert.Equal(t, "1 Number Bricks", services[0].Title)
		assert.Equal(t, "2 Number Bricks", services[1].Title)
		assert.Equal(t, "Industrial Chimneys", services[2].Title)
	})
}

func TestListAll(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	services, err := ListAll(db)
	require.NoError(t, err)
	require.Len(t, services, 4)
	assert.Equal(t, "Piket Red Brick", services[2].Title, "inactive rows are included")
}

func TestGetByID(t *testing.T) {
	db := setupTestDB(t)

	t.Run("service not found", func(t *testing.T) {
		s, err := GetByID(db, 999)
		assert.ErrorIs(t, err, ErrServiceNotFound)
		assert.Nil(t, s)
	})

	t.Run("successful get", func(t *testing.T) {
		created := models.Service{Title: "1 Number Bricks", Price: "₹ 9/Piece"}
		require.NoError(t, Create(db, &created))

		s, err := GetByID(db, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "₹ 9/Piece", s.Price)
	})
}

func TestSave(t *testing.T) {
	db := setupTestDB(t)

	s := models.Service{Title: "Industrial Chimneys", Price: "Contact for Price"}
	require.NoError(t, Create(db, &s))

	s.Price = "₹ 50000"
	require.NoError(t, Save(db, &s))

	got, err := GetByID(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "₹ 50000", got.Price)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	t.Run("service not found", func(t *testing.T) {
		assert.ErrorIs(t, Delete(db, 999), ErrServiceNotFound)
	})

	t.Run("successful delete", func(t *testing.T) {
		s := models.Service{Title: "Piket Red Brick"}
		require.NoError(t, Create(db, &s))

		require.NoError(t, Delete(db, s.ID))

		count, err := Count(db)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
