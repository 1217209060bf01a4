// Package enquiries provides the admin enquiry management endpoints.
package enquiries

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	enquiryctl "github.com/rupachimney/website/internal/db/controller/enquiry"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the enquiry management endpoints.
const Path = handler.AdminPath + "/enquiries"

// updateRequest carries the only mutable enquiry field.
type updateRequest struct {
	Status *string `json:"status"`
}

// Service is the enquiry management handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the enquiry management handler.
var Handler = Service{}

// Init initializes the enquiry management routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all enquiries, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	enquiries, err := enquiryctl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list enquiries")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list enquiries",
		})
	}

	out := make([]fiber.Map, 0, len(enquiries))
	for _, e := range enquiries {
		out = append(out, fiber.Map{
			"id":         e.ID,
			"name":       e.Name,
			"email":      e.Email,
			"phone":      e.Phone,
			"message":    e.Message,
			"status":     e.Status,
			"created_at": e.CreatedAt.Format(handler.TimeFormat),
		})
	}

	return c.JSON(out)
}

// Update changes the status of one enquiry. Other fields are immutable
// through this endpoint.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enquiry not found"})
	}

	if _, err := enquiryctl.GetByID(s.db, uint(id)); err != nil {
		if errors.Is(err, enquiryctl.ErrEnquiryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enquiry not found"})
		}

		log.Error().Err(err).Msg("failed to load enquiry")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update enquiry",
		})
	}

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Status != nil {
		if err := enquiryctl.UpdateStatus(s.db, uint(id), *req.Status); err != nil {
			if errors.Is(err, enquiryctl.ErrEnquiryNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enquiry not found"})
			}

			log.Error().Err(err).Msg("failed to update enquiry")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update enquiry",
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Enquiry updated successfully"})
}

// Delete removes one enquiry.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enquiry not found"})
	}

	if err := enquiryctl.Delete(s.db, uint(id)); err != nil {
		if errors.Is(err, enquiryctl.ErrEnquiryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enquiry not found"})
		}

		log.Error().Err(err).Msg("failed to delete enquiry")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete enquiry",
		})
	}

	return c.JSON(fiber.Map{"message": "Enquiry deleted successfully"})
}
