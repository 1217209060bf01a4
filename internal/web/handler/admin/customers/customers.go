// Package customers provides the admin customer endpoints.
package customers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	customerctl "github.com/rupachimney/website/internal/db/controller/customer"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the customer endpoints.
const Path = handler.AdminPath + "/customers"

// Service is the customer handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the customer handler.
var Handler = Service{}

// Init initializes the customer routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Create)
		router.Put("/:id/blacklist", s.ToggleBlacklist)
	})

	return nil
}

// List returns every customer, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	customers, err := customerctl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list customers")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list customers",
		})
	}

	out := make([]fiber.Map, 0, len(customers))
	for _, cu := range customers {
		out = append(out, fiber.Map{
			"id":             cu.ID,
			"name":           cu.Name,
			"email":          cu.Email,
			"phone":          cu.Phone,
			"address":        cu.Address,
			"is_blacklisted": cu.IsBlacklisted,
			"created_at":     cu.CreatedAt.Format(handler.TimeFormat),
		})
	}

	return c.JSON(out)
}

type createRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
}

// Create adds a new customer record. Only the name is required.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := customerctl.Create(s.db, &customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create customer",
		})
	}

	return c.JSON(fiber.Map{"message": "Customer created successfully"})
}

// ToggleBlacklist flips the blacklist flag and reports the new state.
func (s *Service) ToggleBlacklist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	blacklisted, err := customerctl.ToggleBlacklist(s.db, uint(id))
	if err != nil {
		if errors.Is(err, customerctl.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}

		log.Error().Err(err).Msg("failed to toggle customer blacklist")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update customer",
		})
	}

	message := "Customer removed from blacklist"
	if blacklisted {
		message = "Customer blacklisted"
	}

	return c.JSON(fiber.Map{"message": message, "is_blacklisted": blacklisted})
}
