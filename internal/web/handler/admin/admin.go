// Package admin provides the staff only user overview.
package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/handler/dashboard"
	"github.com/gojira/gojira/internal/web/navigation"
	"github.com/gojira/gojira/internal/web/view"
)

const (
	// Path is the path to the admin page.
	Path = handler.RootPath + "admin"

	// TemplateName is the name of the admin template.
	TemplateName = "admin/admin"

	// DefaultPageSize is the default number of users per page.
	DefaultPageSize = 25
)

// Service is the admin handler service.
type Service struct {
	handler.Service
	provider *auth.LocalProvider
	view     view.TemplateView
}

// Init initializes the admin handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.provider = auth.NewLocalProvider(db)
	s.view = view.TemplateView{
		Config:   view.Config{StaffOnly: true},
		Name:     TemplateName,
		Layout:   handler.BaseLayout,
		LoginURL: cfg.Webserver.LoginURL,
		Context:  s.context,
	}

	app.Get(Path, s.view.Handler())

	return nil
}

func (s *Service) context(c *fiber.Ctx) (fiber.Map, error) {
	total, err := s.provider.CountUsers()
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return nil, err
	}

	page := ClampPage(c.QueryInt("page", 1), total)

	users, _, err := s.provider.ListUsers(DefaultPageSize, (page-1)*DefaultPageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return nil, err
	}

	nav := navigation.New("Users", "admin", dashboard.Path).Crumb("Admin", Path)

	return fiber.Map{
		"Navigation": nav,
		"Users":      users,
		"Total":      total,
		"Page":       page,
		"HasNext":    page < LastPage(total),
	}, nil
}

// LastPage returns the number of the last user page. An empty list has one page.
func LastPage(total int64) int {
	if total <= 0 {
		return 1
	}

	return int((total + DefaultPageSize - 1) / DefaultPageSize)
}

// ClampPage limits page to the range [1, LastPage(total)].
func ClampPage(page int, total int64) int {
	if page < 1 {
		return 1
	}

	if last := LastPage(total); page > last {
		return last
	}

	return page
}
