// Package web assembles the Fiber application: middleware, static files
// and the handler packages, which register their own routes.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rupachimney/website/internal/config"
	adapter "github.com/rupachimney/website/internal/logger/adapter/fiber"
	"github.com/rupachimney/website/internal/web/handler"
	admincustomers "github.com/rupachimney/website/internal/web/handler/admin/customers"
	adminenquiries "github.com/rupachimney/website/internal/web/handler/admin/enquiries"
	admingallery "github.com/rupachimney/website/internal/web/handler/admin/gallery"
	adminorders "github.com/rupachimney/website/internal/web/handler/admin/orders"
	adminservices "github.com/rupachimney/website/internal/web/handler/admin/services"
	adminsettings "github.com/rupachimney/website/internal/web/handler/admin/settings"
	"github.com/rupachimney/website/internal/web/handler/api"
	"github.com/rupachimney/website/internal/web/handler/contact"
	"github.com/rupachimney/website/internal/web/handler/dashboard"
	"github.com/rupachimney/website/internal/web/handler/enquiry"
	"github.com/rupachimney/website/internal/web/handler/login"
	"github.com/rupachimney/website/internal/web/handler/logout"
	"github.com/rupachimney/website/internal/web/handler/pages"
	"github.com/rupachimney/website/internal/web/middleware/auth"
)

// CheckAlivePath answers load balancer health checks.
const CheckAlivePath = "/checkalive"

// maxUploadSize caps multipart request bodies (gallery and service images).
const maxUploadSize = 16 * 1024 * 1024

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			BodyLimit:      maxUploadSize,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access logging
	app.Use(adapter.New(adapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve uploaded images
	app.Static("/static/uploads", cfg.Upload.Dir)

	// admin session guard
	app.Use(auth.New(cfg))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	// init handlers (they register their own routes)
	handlers := []handler.Service{
		&pages.Handler,
		&contact.Handler,
		&enquiry.Handler,
		&api.Handler,
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&adminenquiries.Handler,
		&admingallery.Handler,
		&adminservices.Handler,
		&admincustomers.Handler,
		&adminorders.Handler,
		&adminsettings.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize handler")
		}
	}

	// redirect admin root to dashboard
	app.Get(handler.AdminPath, func(c *fiber.Ctx) error {
		return c.Redirect(dashboard.Path)
	})

	return service
}
