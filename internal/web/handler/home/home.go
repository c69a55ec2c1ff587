// Package home redirects the site root to the dashboard.
package home

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/handler/dashboard"
	"github.com/gojira/gojira/internal/web/view"
)

// Path is the site root.
const Path = handler.RootPath

// Service is the home handler service.
type Service struct {
	handler.Service
	view view.RedirectView
}

// Init registers the root redirect.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.view = view.RedirectView{
		Name:     "home",
		LoginURL: cfg.Webserver.LoginURL,
		GetFunc: func(c *fiber.Ctx) error {
			return c.Redirect(dashboard.Path)
		},
	}

	app.Get(Path, s.view.Handler())

	return nil
}
