package login

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/web/handler"
	"github.com/gojira/gojira/internal/web/session"
	"github.com/gojira/gojira/internal/web/view"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Form is the submitted login form.
type Form struct {
	Username string `form:"username" validate:"required,max=255"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	provider *auth.LocalProvider
	validate *validator.Validate
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(db)
	s.validate = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get renders the login form. Authenticated users are sent on to next.
func (s *Service) Get(c *fiber.Ctx) error {
	next := c.Query(view.RedirectFieldName)

	if req := view.RequestFromCtx(c); req.Identity.IsAuthenticated() {
		return c.Redirect(SafeNext(next, s.cfg.Webserver.URL))
	}

	return s.render(c, next, nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		log.Debug().Err(err).Msg("failed to parse login form")

		return s.render(c, "", ErrInvalidFormData)
	}

	if err := s.validate.Struct(form); err != nil {
		return s.render(c, form.Next, ErrInvalidFormData)
	}

	user, err := s.provider.Authenticate(form.Username, form.Password)

	switch {
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidPassword):
		log.Info().Str("username", form.Username).Msg("failed login attempt")

		return s.render(c, form.Next, ErrInvalidCredentials)
	case errors.Is(err, auth.ErrUserAccountDisabled):
		return s.render(c, form.Next, err)
	case err != nil:
		log.Error().Err(err).Msg("failed to authenticate user")

		return s.render(c, form.Next, ErrInternalServerError)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return s.render(c, form.Next, ErrInternalServerError)
	}

	data := &session.Data{UserID: user.ID}
	data.Set(view.PremiumKey, user.Premium)

	if err = data.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.render(c, form.Next, ErrInternalServerError)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("username", user.Username).Msg("user logged in")

	return c.Redirect(SafeNext(form.Next, s.cfg.Webserver.URL))
}

func (s *Service) render(c *fiber.Ctx, next string, err error) error {
	data := fiber.Map{
		"Title": s.cfg.Title,
		"next":  next,
	}

	if err != nil {
		data["error"] = err.Error()
	}

	return c.Render(TemplateName, data)
}
