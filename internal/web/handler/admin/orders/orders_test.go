package orders

import (
	"encoding/json"
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

	if err := db.AutoMigrate(&models.Customer{}, &models.Service{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	app := fiber.New()

	var s Service
	if err := s.Init(app, &config.Config{}, db); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	return app, db
}

func seedReferents(t *testing.T, db *gorm.DB) (models.Customer, models.Service) {
	t.Helper()

	customer := models.Customer{Name: "Ravi Kumar"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}

	service := models.Service{Title: "1 Number Bricks"}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	return customer, service
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

func TestCreate(t *testing.T) {
	app, db := newTestApp(t)
	customer, service := seedReferents(t, db)

	t.Run("missing referent ids", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPost, Path, `{"notes":"no ids"}`)

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("unknown customer", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPost, Path, `{"customer_id":999,"service_id":1}`)

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("successful create", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPost, Path,
			`{"customer_id":1,"service_id":1,"total_amount":4500,"notes":"500 pieces"}`)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()

		var o models.Order
		if err := db.First(&o).Error; err != nil {
			t.Fatalf("expected stored order: %v", err)
		}

		if o.CustomerID != customer.ID || o.ServiceID != service.ID {
			t.Fatalf("unexpected referents: %+v", o)
		}

		if o.Status != models.OrderStatusPending {
			t.Fatalf("expected pending status, got %q", o.Status)
		}
	})
}

func TestList_JoinsReferents(t *testing.T) {
	app, db := newTestApp(t)
	customer, service := seedReferents(t, db)

	o := models.Order{CustomerID: customer.ID, ServiceID: service.ID, TotalAmount: 4500}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, Path, nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected 1 order, got %d", len(rows))
	}

	if rows[0]["customer_name"] != "Ravi Kumar" || rows[0]["service_title"] != "1 Number Bricks" {
		t.Fatalf("expected joined names, got %+v", rows[0])
	}
}

func TestUpdateStatus(t *testing.T) {
	app, db := newTestApp(t)
	customer, service := seedReferents(t, db)

	o := models.Order{CustomerID: customer.ID, ServiceID: service.ID, Status: models.OrderStatusPending}
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	t.Run("missing status key", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/1/status", `{}`)

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request when status is absent, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("order not found", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/999/status", `{"status":"confirmed"}`)

		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()
	})

	t.Run("successful update", func(t *testing.T) {
		resp := performJSON(t, app, http.MethodPut, Path+"/1/status", `{"status":"confirmed"}`)

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
		}

		_ = resp.Body.Close()

		var got models.Order
		if err := db.First(&got, o.ID).Error; err != nil {
			t.Fatalf("failed to reload order: %v", err)
		}

		if got.Status != models.OrderStatusConfirmed {
			t.Fatalf("expected confirmed status, got %q", got.Status)
		}
	})
}
