// Package enquiry handles public enquiry submissions. The endpoint
// accepts two distinct request shapes: a JSON body sent by the service
// detail modal and a classic form post from the main enquiry form.
package enquiry

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	enquiryctl "github.com/rupachimney/website/internal/db/controller/enquiry"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web/flash"
	"github.com/rupachimney/website/internal/web/handler"
)

const (
	// Path is the path of the enquiry submission endpoint.
	Path = "/submit_enquiry"

	// DefaultProductName is used when the form does not name a product.
	DefaultProductName = "Rupa Chimney Bricks"
)

// jsonRequest is the payload sent by the service detail modal.
type jsonRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Service is the enquiry handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the enquiry handler.
var Handler = Service{}

// Init initializes the enquiry submission route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Post dispatches on the request body shape.
func (s *Service) Post(c *fiber.Ctx) error {
	if c.Is("json") {
		return s.postJSON(c)
	}

	return s.postForm(c)
}

// postJSON handles the service-modal variant. The enquiry type is fixed
// to "service" and the message is stored verbatim.
func (s *Service) postJSON(c *fiber.Ctx) error {
	var req jsonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	e := models.Enquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		EnquiryType: models.EnquiryTypeService,
	}

	if err := enquiryctl.Create(s.db, &e); err != nil {
		log.Error().Err(err).Msg("failed to save enquiry")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit enquiry",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Enquiry submitted successfully",
	})
}

// postForm handles the main enquiry form. The stored message is a
// composite embedding the enquiry type, product name and original text.
func (s *Service) postForm(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	phone := c.FormValue("phone")
	message := c.FormValue("message")

	enquiryType := c.FormValue("enquiry_type", models.EnquiryTypeGeneral)
	productName := c.FormValue("product_name", DefaultProductName)

	if name == "" || email == "" || phone == "" || message == "" {
		flash.Set(c, "danger", "Please fill in all required fields.")
		return c.Redirect(handler.RootPath)
	}

	e := models.Enquiry{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Message:     fmt.Sprintf("Enquiry Type: %s\nProduct: %s\nMessage: %s", enquiryType, productName, message),
		EnquiryType: enquiryType,
	}

	if err := enquiryctl.Create(s.db, &e); err != nil {
		log.Error().Err(err).Msg("failed to save enquiry")
		flash.Set(c, "danger", "Error submitting enquiry. Please try again.")

		return c.Redirect(handler.RootPath)
	}

	flash.Set(c, "success", "Thank you for your enquiry! We will contact you soon.")

	return c.Redirect(handler.RootPath)
}
