// Package web assembles the fiber application and runs the http server.
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
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/config"
	fiberlog "github.com/gojira/gojira/internal/logger/adapter/fiber"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/handler/about"
	"github.com/gojira/gojira/internal/web/handler/admin"
	"github.com/gojira/gojira/internal/web/handler/dashboard"
	"github.com/gojira/gojira/internal/web/handler/home"
	"github.com/gojira/gojira/internal/web/handler/login"
	"github.com/gojira/gojira/internal/web/handler/logout"
	"github.com/gojira/gojira/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error)

	go func() {
		err := s.App.Listen(addr)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		doneFiber <- err
	}()

	return <-doneFiber
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
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

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers the liveness probe.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// handlers returns new page handlers in registration order. Each app gets its
// own set.
func handlers() []handler.Service {
	return []handler.Service{
		&home.Service{},
		&login.Service{},
		&logout.Service{},
		&dashboard.Service{},
		&admin.Service{},
		&about.Service{},
	}
}

// NewEngine returns the template engine. In dev mode templates are read from
// disk and reloaded on every render.
func NewEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	return engine
}

// New creates the web service. views may be nil to use NewEngine.
func New(cfg *config.Config, db *gorm.DB, views fiber.Views) (*Service, error) {
	if cfg == nil || db == nil {
		return nil, handler.ErrNilACD
	}

	if views == nil {
		views = NewEngine(cfg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "gojira",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          views,
			ErrorHandler:   ErrorHandler,
		},
	)

	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	app.Use(auth.New(db))

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.fastShutDown = cfg.DevMode
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	for _, h := range handlers() {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err
		}
	}

	return service, nil
}
