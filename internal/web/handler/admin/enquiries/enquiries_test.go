package enquiries

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Enquiry{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	app := fiber.New()

	var s Service
	if err := s.Init(app, &config.Config{}, db); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	return app, db
}

func performJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func seedEnquiry(t *testing.T, db *gorm.DB) models.Enquiry {
	t.Helper()

	e := models.Enquiry{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "9876543210",
		Message: "Need 500 bricks",
		Status:  models.EnquiryStatusPending,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("failed to seed enquiry: %v", err)
	}

	return e
}

func TestUpdate(t *testing.T) {
	app, db := newTestApp(t)
	e := seedEnquiry(t, db)

	t.Run("unknown id without status key", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/999", `{}`)

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("unknown id with status key", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/999", `{"status":"contacted"}`)

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("existing id without status key", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/1", `{}`)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()

		var got models.Enquiry
		if err := db.First(&got, e.ID).Error; err != nil {
			t.Fatalf("failed to reload enquiry: %v", err)
		}

		if got.Status != models.EnquiryStatusPending {
			t.Fatalf("expected status to stay pending, got %q", got.Status)
		}
	})

	t.Run("existing id with status key", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/1", `{"status":"contacted"}`)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()

		var got models.Enquiry
		if err := db.First(&got, e.ID).Error; err != nil {
			t.Fatalf("failed to reload enquiry: %v", err)
		}

		if got.Status != "contacted" {
			t.Fatalf("expected contacted status, got %q", got.Status)
		}
	})
}

func TestDelete(t *testing.T) {
	app, db := newTestApp(t)
	e := seedEnquiry(t, db)

	t.Run("unknown id", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodDelete, Path+"/999", "")

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("existing id", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodDelete, Path+"/1", "")

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()

		var count int64
		if err := db.Model(&models.Enquiry{}).Where("id = ?", e.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count enquiries: %v", err)
		}

		if count != 0 {
			t.Fatalf("expected enquiry row to be gone, found %d", count)
		}
	})
}
