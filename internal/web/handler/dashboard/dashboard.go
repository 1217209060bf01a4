// Package dashboard provides the admin dashboard aggregate counts.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/controller/contact"
	"github.com/rupachimney/website/internal/db/controller/enquiry"
	"github.com/rupachimney/website/internal/db/controller/gallery"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the path to the admin dashboard.
const Path = handler.AdminPath + "/dashboard"

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get returns the dashboard statistics.
func (s *Service) Get(c *fiber.Ctx) error {
	totalEnquiries, err := enquiry.Count(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	totalImages, err := gallery.Count(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	pendingEnquiries, err := enquiry.CountByStatus(s.db, models.EnquiryStatusPending)
	if err != nil {
		return s.fail(c, err)
	}

	totalMessages, err := contact.Count(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"total_enquiries":        totalEnquiries,
		"total_gallery_images":   totalImages,
		"pending_enquiries":      pendingEnquiries,
		"total_contact_messages": totalMessages,
	})
}

func (s *Service) fail(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Msg("failed to load dashboard statistics")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to load dashboard statistics",
	})
}
