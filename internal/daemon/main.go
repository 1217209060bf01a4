// Package daemon wires the database, session storage and web service
// together and runs them.
package daemon

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	sessionsqlite "github.com/gofiber/storage/sqlite3/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	"github.com/rupachimney/website/internal/db/models"
	"github.com/rupachimney/website/internal/web"
	"github.com/rupachimney/website/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until it is shut
// down by a signal.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Admin{},
		&models.Setting{},
		&models.Service{},
		&models.GalleryImage{},
		&models.Enquiry{},
		&models.ContactMessage{},
		&models.Customer{},
		&models.Order{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	if err = os.MkdirAll(cfg.Upload.Dir, 0o750); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("failed to create upload directory")
	}

	// Initialize fiber session store
	sessionStorage := sessionsqlite.New(sessionsqlite.Config{
		Database: cfg.DB.Path,
		Table:    "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}
