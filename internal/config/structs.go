package config

import (
	"time"

	"github.com/rupachimney/website/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryMinutes int // idle expiry of an admin session, in minutes
}

// Expiry returns the session idle expiry as a duration.
func (s Session) Expiry() time.Duration {
	return time.Duration(s.ExpiryMinutes) * time.Minute
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Upload    Upload
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// Upload holds settings for stored gallery and service images.
type Upload struct {
	Dir string // directory uploaded images are written to
}
