// Package api provides the public machine-readable endpoints consumed by
// client-side scripts.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/controller/service"
	"github.com/rupachimney/website/internal/db/controller/setting"
	"github.com/rupachimney/website/internal/web/handler"
)

// Service is the public API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public API handler.
var Handler = Service{}

// Init initializes the public API routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get("/api/services", s.Services)
	app.Get("/api/settings", s.Settings)

	return nil
}

// Services returns the active services as a JSON array. An internal
// failure degrades to an empty array rather than an error status.
func (s *Service) Services(c *fiber.Ctx) error {
	services, err := service.ListActive(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch services")
		return c.JSON([]fiber.Map{})
	}

	out := make([]fiber.Map, 0, len(services))
	for _, sv := range services {
		out = append(out, fiber.Map{
			"id":            sv.ID,
			"title":         sv.Title,
			"description":   sv.Description,
			"price":         sv.Price,
			"features":      sv.Features,
			"image":         sv.Image,
			"is_active":     sv.IsActive,
			"display_order": sv.DisplayOrder,
		})
	}

	return c.JSON(out)
}

// Settings returns the settings as a flat JSON object. An internal
// failure degrades to an empty object.
func (s *Service) Settings(c *fiber.Ctx) error {
	settings, err := setting.AsMap(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings")
		return c.JSON(fiber.Map{})
	}

	return c.JSON(settings)
}
