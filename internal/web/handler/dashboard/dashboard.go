// Package dashboard provides the landing page of logged in users.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/db/models"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/navigation"
	"github.com/gojira/gojira/internal/web/view"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	view view.TemplateView
}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.view = view.TemplateView{
		Config:   view.Config{LoginRequired: true},
		Name:     TemplateName,
		Layout:   handler.BaseLayout,
		LoginURL: cfg.Webserver.LoginURL,
		Context:  s.context,
	}

	app.Get(Path, s.view.Handler())

	return nil
}

func (s *Service) context(c *fiber.Ctx) (fiber.Map, error) {
	nav := navigation.New("Dashboard", "dashboard", Path)

	data := fiber.Map{
		"Navigation": nav,
		"Title":      s.cfg.Title,
	}

	if user, ok := c.Locals(view.LocalsIdentity).(*models.User); ok {
		data["DisplayName"] = user.DisplayName()
		data["LastLoginAt"] = user.LastLoginAt
	}

	return data, nil
}
