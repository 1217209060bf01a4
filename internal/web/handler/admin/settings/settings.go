// Package settings provides the admin site settings endpoints.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	settingctl "github.com/rupachimney/website/internal/db/controller/setting"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the settings endpoints.
const Path = handler.AdminPath + "/settings"

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Update)
	})

	return nil
}

// Get returns all settings as a flat key/value object.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := settingctl.AsMap(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	return c.JSON(settings)
}

// Update upserts every key/value pair in the request body.
func (s *Service) Update(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := settingctl.SetAll(s.db, values); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	return c.JSON(fiber.Map{"message": "Settings updated successfully"})
}
