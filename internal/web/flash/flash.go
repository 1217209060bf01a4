// Package flash carries one-shot user notices across a redirect in a
// cookie, read and cleared by the next page load.
package flash

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "flash"

// Message is a single flashed notice.
type Message struct {
	Category string `json:"category"` // success, info, warning, danger
	Text     string `json:"text"`
}

// Set stores a notice to be shown after the next redirect.
func Set(c *fiber.Ctx, category, text string) {
	out, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(string(out)),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Pop reads and clears the flashed notice, if any.
func Pop(c *fiber.Ctx) (Message, bool) {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return Message{}, false
	}

	// clear the cookie
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return Message{}, false
	}

	var m Message
	if err := json.Unmarshal([]byte(decoded), &m); err != nil {
		return Message{}, false
	}

	return m, true
}
