// Package gallery provides the admin gallery management endpoints.
package gallery

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	galleryctl "github.com/rupachimney/website/internal/db/controller/gallery"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/upload"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the base path of the gallery management endpoints.
const Path = handler.AdminPath + "/gallery"

// DefaultCategory is assigned when the upload form names no category.
const DefaultCategory = "general"

// Service is the gallery management handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the gallery management handler.
var Handler = Service{}

// Init initializes the gallery management routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Upload)
		router.Delete("/:id", s.Delete)
	})

	return nil
}

// List returns all gallery images, newest upload first.
func (s *Service) List(c *fiber.Ctx) error {
	images, err := galleryctl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list gallery images",
		})
	}

	out := make([]fiber.Map, 0, len(images))
	for _, img := range images {
		out = append(out, fiber.Map{
			"id":          img.ID,
			"filename":    img.Filename,
			"caption":     img.Caption,
			"category":    img.Category,
			"uploaded_at": img.UploadedAt.Format(handler.TimeFormat),
		})
	}

	return c.JSON(out)
}

// Upload stores a new gallery image. The row is only created after the
// file was written successfully.
func (s *Service) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file selected"})
	}

	filename, err := upload.Save(fileHeader, s.cfg.Upload.Dir)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidFileType) || errors.Is(err, upload.ErrEmptyFilename) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type"})
		}

		log.Error().Err(err).Msg("failed to store gallery image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store image",
		})
	}

	img := models.GalleryImage{
		Filename: filename,
		Caption:  c.FormValue("caption"),
		Category: c.FormValue("category", DefaultCategory),
	}

	if err := galleryctl.Create(s.db, &img); err != nil {
		log.Error().Err(err).Msg("failed to save gallery image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}

	return c.JSON(fiber.Map{"message": "Image uploaded successfully"})
}

// Delete removes the gallery row and its backing file. A file that is
// already gone does not fail the delete.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Image not found"})
	}

	img, err := galleryctl.GetByID(s.db, uint(id))
	if err != nil {
		if errors.Is(err, galleryctl.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Image not found"})
		}

		log.Error().Err(err).Msg("failed to load gallery image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete image",
		})
	}

	if err := upload.Remove(s.cfg.Upload.Dir, img.Filename); err != nil {
		// deletion stays idempotent, the row still goes away
		log.Warn().Err(err).Str("filename", img.Filename).Msg("failed to remove image file")
	}

	if err := galleryctl.Delete(s.db, img.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery image")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete image",
		})
	}

	return c.JSON(fiber.Map{"message": "Image deleted successfully"})
}
