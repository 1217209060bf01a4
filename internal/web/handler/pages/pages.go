// Package pages provides the public page data handlers.
package pages

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/controller/gallery"
	"github.com/rupachimney/website/internal/db/controller/service"
	"github.com/rupachimney/website/internal/db/controller/setting"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/flash"
	"github.com/rupachimney/website/internal/web/handler"
)

// Service is the public pages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public pages handler.
var Handler = Service{}

// Init initializes the public page routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(handler.RootPath, s.Home)
	app.Get("/about", s.About)
	app.Get("/services", s.Services)

	return nil
}

// Home returns the home page data: active services in display order, the
// settings map and the gallery slider, newest upload first.
func (s *Service) Home(c *fiber.Ctx) error {
	services, err := service.ListActive(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	settings, err := setting.AsMap(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	images, err := gallery.List(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	sliderImages := make([]fiber.Map, 0, len(images))
	for _, img := range images {
		sliderImages = append(sliderImages, fiber.Map{
			"id":          img.ID,
			"filename":    img.Filename,
			"caption":     img.Caption,
			"category":    img.Category,
			"uploaded_at": img.UploadedAt.Format(handler.TimeFormat),
		})
	}

	data := fiber.Map{
		"services":      serviceList(services),
		"settings":      settings,
		"slider_images": sliderImages,
	}

	if msg, ok := flash.Pop(c); ok {
		data["flash"] = msg
	}

	return c.JSON(data)
}

// About returns the about page data.
func (s *Service) About(c *fiber.Ctx) error {
	settings, err := setting.AsMap(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"settings": settings,
	})
}

// Services returns the services page data.
func (s *Service) Services(c *fiber.Ctx) error {
	services, err := service.ListActive(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	settings, err := setting.AsMap(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"services": serviceList(services),
		"settings": settings,
	})
}

func serviceList(services []models.Service) []fiber.Map {
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

	return out
}

func (s *Service) fail(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Msg("failed to load page data")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load page data",
	})
}
