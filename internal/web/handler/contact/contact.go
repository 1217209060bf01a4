// Package contact provides the public contact page handlers.
package contact

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	contactctl "github.com/rupachimney/website/internal/db/controller/contact"
	"github.com/rupachimney/website/internal/db/controller/setting"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/flash"
	"github.com/rupachimney/website/internal/web/handler"
)

// Path is the path of the contact page.
const Path = "/contact"

// Service is the contact page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the contact page handler.
var Handler = Service{}

// Init initializes the contact page routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get returns the contact page data.
func (s *Service) Get(c *fiber.Ctx) error {
	settings, err := setting.AsMap(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load page data",
		})
	}

	data := fiber.Map{
		"settings": settings,
	}

	if msg, ok := flash.Pop(c); ok {
		data["flash"] = msg
	}

	return c.JSON(data)
}

// Post accepts a contact form submission. Only the message field is
// required; the stored message starts in status "unread".
func (s *Service) Post(c *fiber.Ctx) error {
	message := c.FormValue("message")
	if message == "" {
		flash.Set(c, "danger", "Please enter a message.")
		return c.Redirect(Path)
	}

	msg := models.ContactMessage{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Subject: c.FormValue("subject"),
		Message: message,
	}

	if err := contactctl.Create(s.db, &msg); err != nil {
		log.Error().Err(err).Msg("failed to save contact message")
		flash.Set(c, "danger", "Error sending your message. Please try again.")

		return c.Redirect(Path)
	}

	flash.Set(c, "success", "Thank you for your message! We will get back to you soon.")

	return c.Redirect(Path)
}
