// Package login provides the admin login handlers.
package login

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/auth"
	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/web/flash"
	"github.com/rupachimney/website/internal/web/handler"
	"github.com/rupachimney/website/internal/web/session"
)

const (
	// Path is the path to the admin login page.
	Path = handler.AdminPath + "/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	provider *auth.LocalProvider
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page. An already-authenticated admin is sent
// straight to the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	if sessionID := c.Cookies("session"); sessionID != "" {
		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err == nil && sessData.Admin.ID > 0 {
			return c.Redirect(handler.AdminPath + "/dashboard")
		}
	}

	data := fiber.Map{
		"title": s.cfg.Title,
	}

	if msg, ok := flash.Pop(c); ok {
		data["flash"] = msg
	}

	return c.JSON(data)
}

// Post handles the login form submission. A failed attempt answers with
// 401 and a JSON error body instead of re-rendering a page; the back
// office shows that message inline on the login form.
func (s *Service) Post(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	admin, err := s.provider.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) || errors.Is(err, auth.ErrInvalidPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid username or password",
			})
		}

		log.Error().Err(err).Msg("login failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	sessionID := session.GenerateSessionID()

	adminSession := &session.Data{
		Admin: *admin,
	}

	if err = adminSession.Write(sessionID, s.cfg.Webserver.Session.Expiry()); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	// set login cookie; MaxAge makes it survive a browser restart up to
	// the idle expiry
	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.Expiry().Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	flash.Set(c, "success", "Successfully logged in!")

	return c.Redirect(handler.AdminPath + "/dashboard")
}
