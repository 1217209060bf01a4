// Package services provides the admin service catalog endpoints.
package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	servicectl "github.com/rupachimney/website/internal/db/controller/service"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/upload"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the service management endpoints.
const Path = handler.AdminPath + "/services"

// Service is the service management handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the service management handler.
var Handler = Service{}

// Init initializes the service management routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Create)
		router.Put("/:id", s.Update)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns every service, ordered by display order then title.
func (s *Service) List(c *fiber.Ctx) error {
	services, err := servicectl.ListAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list services")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list services",
		})
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
			"created_at":    sv.CreatedAt.Format(handler.TimeFormat),
		})
	}

	return c.JSON(out)
}

// Create adds a new service from a multipart form. The image is optional;
// is_active is the string "true" compared case-insensitively and
// display_order falls back to 0 when it does not parse.
func (s *Service) Create(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	var imageFilename string

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader.Filename != "" {
		stored, err := upload.Save(fileHeader, s.cfg.Upload.Dir)
		if err == nil {
			imageFilename = stored
		}
	}

	displayOrder, err := strconv.Atoi(c.FormValue("display_order", "0"))
	if err != nil {
		displayOrder = 0
	}

	sv := models.Service{
		Title:        title,
		Description:  c.FormValue("description"),
		Price:        c.FormValue("price"),
		Features:     c.FormValue("features"),
		Image:        imageFilename,
		IsActive:     strings.EqualFold(c.FormValue("is_active", "false"), "true"),
		DisplayOrder: displayOrder,
	}

	if err := servicectl.Create(s.db, &sv); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.JSON(fiber.Map{"message": "Service created successfully"})
}

// Update mutates any subset of service fields. Each submitted field is
// parsed and assigned exactly once; a replacement image deletes the
// previous file.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	sv, err := servicectl.GetByID(s.db, uint(id))
	if err != nil {
		if errors.Is(err, servicectl.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}

		log.Error().Err(err).Msg("failed to load service")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	if fileHeader, errFile := c.FormFile("image"); errFile == nil && fileHeader.Filename != "" {
		stored, errSave := upload.Save(fileHeader, s.cfg.Upload.Dir)
		if errSave == nil {
			if sv.Image != "" {
				if errRemove := upload.Remove(s.cfg.Upload.Dir, sv.Image); errRemove != nil {
					log.Warn().Err(errRemove).Str("filename", sv.Image).Msg("failed to remove old image file")
				}
			}

			sv.Image = stored
		}
	}

	fields := formFields(c)

	if v, ok := fields["title"]; ok {
		sv.Title = v
	}

	if v, ok := fields["description"]; ok {
		sv.Description = v
	}

	if v, ok := fields["price"]; ok {
		sv.Price = v
	}

	if v, ok := fields["features"]; ok {
		sv.Features = v
	}

	if v, ok := fields["is_active"]; ok {
		sv.IsActive = strings.EqualFold(v, "true")
	}

	if v, ok := fields["display_order"]; ok {
		if order, errParse := strconv.Atoi(v); errParse == nil {
			sv.DisplayOrder = order
		}
	}

	if err := servicectl.Save(s.db, sv); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	return c.JSON(fiber.Map{"message": "Service updated successfully"})
}

// Delete removes the service row and its image file.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	sv, err := servicectl.GetByID(s.db, uint(id))
	if err != nil {
		if errors.Is(err, servicectl.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}

		log.Error().Err(err).Msg("failed to load service")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}

	if sv.Image != "" {
		if errRemove := upload.Remove(s.cfg.Upload.Dir, sv.Image); errRemove != nil {
			log.Warn().Err(errRemove).Str("filename", sv.Image).Msg("failed to remove image file")
		}
	}

	if err := servicectl.Delete(s.db, sv.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}

	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// formFields collects the fields actually present in the request body,
// from either a multipart or a urlencoded form, so absent fields can be
// told apart from empty ones.
func formFields(c *fiber.Ctx) map[string]string {
	fields := make(map[string]string)

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for k, v := range mf.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}

		return fields
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})

	return fields
}
