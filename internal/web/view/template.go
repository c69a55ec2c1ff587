package view

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DefaultLoginURL is used by views without a LoginURL.
const DefaultLoginURL = "/login"

// ContextFunc returns the page specific template values of a request.
type ContextFunc func(c *fiber.Ctx) (fiber.Map, error)

// gate runs Decide for the request in c and answers the redirect or forbidden
// outcome itself. For a proceeding request it returns the decision context and
// ok == true.
func gate(c *fiber.Ctx, name string, cfg Config, loginURL string) (ctx fiber.Map, ok bool, err error) {
	req := RequestFromCtx(c)
	decision := Decide(cfg, req)

	observe(name, decision.Outcome)

	switch decision.Outcome {
	case OutcomeRedirectToLogin:
		if loginURL == "" {
			loginURL = DefaultLoginURL
		}

		log.Debug().Str("view", name).Str("path", req.FullPath).Msg("login required, redirecting")

		return nil, false, RedirectToLogin(c, loginURL, "")
	case OutcomeForbidden:
		log.Warn().Str("view", name).Str("path", req.FullPath).Msg("staff only view requested by non-staff user")

		return nil, false, c.Status(fiber.StatusForbidden).SendString(StaffOnlyBody)
	}

	decision.Context["CurrentUser"] = req.Identity

	return decision.Context, true, nil
}

// TemplateView renders a template for requests passing its Config.
type TemplateView struct {
	Config

	// Name is the template rendered on GET.
	Name string
	// Layout is the optional layout wrapping Name.
	Layout string
	// LoginURL is the login page. Empty means DefaultLoginURL.
	LoginURL string
	// Extra is merged over the page context on every render.
	Extra ExtraContext
	// Context supplies page values. It runs after gating.
	Context ContextFunc
}

// Dispatch gates the request and calls next with the page context stored in
// c.Locals under "ViewContext".
func (v *TemplateView) Dispatch(c *fiber.Ctx, next fiber.Handler) error {
	base, ok, err := gate(c, v.Name, v.Config, v.LoginURL)
	if !ok || err != nil {
		return err
	}

	c.Locals("ViewContext", base)

	return next(c)
}

// Get renders the template with the merged context.
func (v *TemplateView) Get(c *fiber.Ctx) error {
	base, _ := c.Locals("ViewContext").(fiber.Map)

	ctx, err := v.ContextData(c, base)
	if err != nil {
		return err
	}

	if v.Layout != "" {
		return c.Render(v.Name, ctx, v.Layout)
	}

	return c.Render(v.Name, ctx)
}

// ContextData merges base, the page context and Extra, in that order.
func (v *TemplateView) ContextData(c *fiber.Ctx, base fiber.Map) (fiber.Map, error) {
	ctx := fiber.Map{}
	for k, val := range base {
		ctx[k] = val
	}

	if v.Context != nil {
		page, err := v.Context(c)
		if err != nil {
			return nil, err
		}

		for k, val := range page {
			ctx[k] = val
		}
	}

	return v.Extra.Merge(ctx), nil
}

// Handler returns the GET handler of the view.
func (v *TemplateView) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return v.Dispatch(c, v.Get)
	}
}

// DirectTemplateView renders a template with an ExtraContext and no gating.
type DirectTemplateView struct {
	Name   string
	Layout string
	Extra  ExtraContext
}

// Get renders the template.
func (v *DirectTemplateView) Get(c *fiber.Ctx) error {
	ctx := v.Extra.Merge(fiber.Map{})

	if v.Layout != "" {
		return c.Render(v.Name, ctx, v.Layout)
	}

	return c.Render(v.Name, ctx)
}

// DirectTemplate returns a handler rendering name with extra.
func DirectTemplate(name, layout string, extra ExtraContext) fiber.Handler {
	v := &DirectTemplateView{Name: name, Layout: layout, Extra: extra}

	return v.Get
}

// RedirectView is a gated view that only redirects. GetFunc must be set by
// the embedding handler, otherwise GET fails with ErrNotImplemented.
type RedirectView struct {
	Config

	// Name identifies the view in logs and metrics.
	Name string
	// LoginURL is the login page. Empty means DefaultLoginURL.
	LoginURL string
	// GetFunc answers GET.
	GetFunc fiber.Handler
}

// Get calls GetFunc.
func (v *RedirectView) Get(c *fiber.Ctx) error {
	if v.GetFunc == nil {
		return errors.WithStack(ErrNotImplemented)
	}

	return v.GetFunc(c)
}

// Handler returns the gated GET handler of the view.
func (v *RedirectView) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok, err := gate(c, v.Name, v.Config, v.LoginURL); !ok || err != nil {
			return err
		}

		return v.Get(c)
	}
}
