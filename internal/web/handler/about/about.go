// Package about renders the public about page.
package about

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/db/controller/setting"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/navigation"
	"github.com/gojira/gojira/internal/web/view"
)

const (
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about template.
	TemplateName = "about/about"
)

// Service is the about handler service.
type Service struct {
	handler.Service
}

// Init registers the about page. Its values are read on every request.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	app.Get(Path, view.DirectTemplate(TemplateName, handler.BaseLayout, Extra(cfg, db)))

	return nil
}

// Extra returns the about page context.
func Extra(cfg *config.Config, db *gorm.DB) view.ExtraContext {
	provider := auth.NewLocalProvider(db)

	return view.ExtraContext{
		"Navigation": view.Static(navigation.New("About", "about", handler.RootPath).Crumb("About", Path)),
		"site_title": view.Static(cfg.Title),
		"now": view.Producer(func() any {
			return time.Now().UTC().Format(time.RFC1123)
		}),
		"user_count": view.Producer(func() any {
			n, err := provider.CountUsers()
			if err != nil {
				log.Error().Err(err).Msg("failed to count users")
			}

			return n
		}),
		"motd": view.Producer(func() any {
			return setting.String(db, setting.MOTD, "")
		}),
	}
}
