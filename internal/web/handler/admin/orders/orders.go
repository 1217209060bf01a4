// Package orders provides the admin order endpoints.
package orders

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	orderctl "github.com/rupachimney/website/internal/db/controller/order"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the order endpoints.
const Path = handler.AdminPath + "/orders"

// Service is the order handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the order handler.
var Handler = Service{}

var validate = validator.New()

// Init initializes the order routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Create)
		router.Put("/:id/status", s.UpdateStatus)
	})

	return nil
}

// List returns every order joined with its customer and service, newest
// first.
func (s *Service) List(c *fiber.Ctx) error {
	orders, err := orderctl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list orders",
		})
	}

	out := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		out = append(out, fiber.Map{
			"id":            o.ID,
			"customer_name": o.Customer.Name,
			"service_title": o.Service.Title,
			"order_date":    o.OrderDate.Format(handler.TimeFormat),
			"status":        o.Status,
			"total_amount":  o.TotalAmount,
			"notes":         o.Notes,
			"created_at":    o.CreatedAt.Format(handler.TimeFormat),
		})
	}

	return c.JSON(out)
}

type createRequest struct {
	CustomerID  uint    `json:"customer_id" validate:"required"`
	ServiceID   uint    `json:"service_id" validate:"required"`
	TotalAmount float64 `json:"total_amount"`
	Notes       string  `json:"notes"`
}

// Create records a new order for an existing customer and service.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Customer and service are required",
		})
	}

	o := models.Order{
		CustomerID:  req.CustomerID,
		ServiceID:   req.ServiceID,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}

	if err := orderctl.Create(s.db, &o); err != nil {
		if errors.Is(err, orderctl.ErrReferentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Customer or service not found",
			})
		}

		log.Error().Err(err).Msg("failed to create order")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	return c.JSON(fiber.Map{"message": "Order created successfully"})
}

type statusRequest struct {
	Status *string `json:"status"`
}

// UpdateStatus sets the status on an existing order. The request must
// carry a status key.
func (s *Service) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required"})
	}

	if err := orderctl.UpdateStatus(s.db, uint(id), *req.Status); err != nil {
		if errors.Is(err, orderctl.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}

		log.Error().Err(err).Msg("failed to update order status")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	return c.JSON(fiber.Map{"message": "Order status updated successfully"})
}
