package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/web/flash"
	"github.com/rupachimney/website/internal/web/handler"
	"github.com/rupachimney/website/internal/web/handler/dashboard"
	"github.com/rupachimney/website/internal/web/handler/login"
	"github.com/rupachimney/website/internal/web/handler/logout"
	"github.com/rupachimney/website/internal/web/session"
)

// New returns a Fiber middleware that guards every /admin route except the
// login page. Browser-facing pages redirect to the login page with a
// flashed notice; JSON endpoints return 401 without performing anything.
func New(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// public routes skip the check entirely
		if !strings.HasPrefix(path, handler.AdminPath) {
			return c.Next()
		}

		// login page handles its own redirect for already-authenticated admins
		if strings.HasPrefix(path, login.Path) {
			return c.Next()
		}

		// logout clears session state unconditionally
		if strings.HasPrefix(path, logout.Path) {
			return c.Next()
		}

		sessionID := c.Cookies("session")

		var valid bool

		sessData := new(session.Data)
		if sessionID != "" {
			if err := sessData.Read(sessionID); err == nil && sessData.Admin.ID > 0 {
				valid = true
			}
		}

		if !valid {
			if isBrowserPage(path) {
				flash.Set(c, "warning", "Please log in to access the admin dashboard")
				return c.Redirect(login.Path)
			}

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		// push the idle expiry forward on every authenticated request
		if err := sessData.Write(sessionID, cfg.Webserver.Session.Expiry()); err != nil {
			log.Error().Err(err).Msg("failed to refresh session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     "session",
			Value:    sessionID,
			MaxAge:   int(cfg.Webserver.Session.Expiry().Seconds()),
			Secure:   !cfg.DevMode,
			HTTPOnly: true,
			SameSite: "Lax",
		})

		c.Locals("CurrentAdmin", sessData.Admin)

		return c.Next()
	}
}

// isBrowserPage reports whether the admin path is browser-facing and gets
// a redirect instead of a JSON 401.
func isBrowserPage(path string) bool {
	return strings.HasPrefix(path, dashboard.Path)
}
