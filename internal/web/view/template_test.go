package view

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordViews remembers the last render call and writes the template name.
type recordViews struct {
	name   string
	layout string
	data   fiber.Map
}

func (*recordViews) Load() error { return nil }

func (r *recordViews) Render(w io.Writer, name string, data interface{}, layout ...string) error {
	r.name = name
	r.data, _ = data.(fiber.Map)
	r.layout = ""

	if len(layout) > 0 {
		r.layout = layout[0]
	}

	_, err := io.WriteString(w, name)

	return err
}

// newApp returns an app whose requests carry identity and sess.
func newApp(views *recordViews, identity Identity, sess Session) *fiber.App {
	app := fiber.New(fiber.Config{Views: views})

	app.Use(func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(LocalsIdentity, identity)
		}

		if sess != nil {
			c.Locals(LocalsSession, sess)
		}

		return c.Next()
	})

	return app
}

func do(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestTemplateView_RedirectsAnonymous(t *testing.T) {
	views := &recordViews{}
	app := newApp(views, nil, nil)

	v := &TemplateView{Config: Config{LoginRequired: true}, Name: "page"}
	app.Get("/page", v.Handler())

	resp, _ := do(t, app, "/page?x=1")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fpage%3Fx%3D1", resp.Header.Get("Location"))
	assert.Empty(t, views.name, "nothing must be rendered")
}

func TestTemplateView_RedirectsToAbsoluteLoginURL(t *testing.T) {
	app := newApp(&recordViews{}, nil, nil)

	v := &TemplateView{
		Config:   Config{LoginRequired: true},
		Name:     "page",
		LoginURL: "https://auth.example.org/login",
	}
	app.Get("/page", v.Handler())

	resp, _ := do(t, app, "/page")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t,
		"https://auth.example.org/login?next=http%3A%2F%2Fexample.com%2Fpage",
		resp.Header.Get("Location"),
	)
}

func TestTemplateView_ForbidsNonStaff(t *testing.T) {
	views := &recordViews{}
	app := newApp(views, fakeIdentity{authenticated: true}, nil)

	v := &TemplateView{Config: Config{StaffOnly: true}, Name: "forbidden-test"}
	app.Get("/staff", v.Handler())

	before := testutil.ToFloat64(dispatchCounter.WithLabelValues("forbidden-test", "forbidden"))

	resp, body := do(t, app, "/staff")

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, StaffOnlyBody, body)
	assert.Empty(t, views.name)
	assert.InDelta(t, before+1, testutil.ToFloat64(dispatchCounter.WithLabelValues("forbidden-test", "forbidden")), 0)
}

func TestTemplateView_RendersMergedContext(t *testing.T) {
	views := &recordViews{}
	user := fakeIdentity{authenticated: true, staff: true}
	app := newApp(views, user, mapSession{PremiumKey: true})

	v := &TemplateView{
		Config: Config{StaffOnly: true},
		Name:   "admin",
		Layout: "layouts/base",
		Extra:  ExtraContext{"greeting": Static("hi"), "page": Static("extra wins")},
		Context: func(_ *fiber.Ctx) (fiber.Map, error) {
			return fiber.Map{"page": "context", "rows": 3}, nil
		},
	}
	app.Get("/admin", v.Handler())

	resp, body := do(t, app, "/admin")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body)
	assert.Equal(t, "layouts/base", views.layout)
	assert.Equal(t, true, views.data[PremiumKey])
	assert.Equal(t, "hi", views.data["greeting"])
	assert.Equal(t, "extra wins", views.data["page"])
	assert.Equal(t, 3, views.data["rows"])
	assert.Equal(t, user, views.data["CurrentUser"])
}

func TestTemplateView_ContextError(t *testing.T) {
	app := newApp(&recordViews{}, nil, nil)

	v := &TemplateView{
		Name: "broken",
		Context: func(_ *fiber.Ctx) (fiber.Map, error) {
			return nil, ErrBadRequest
		},
	}
	app.Get("/broken", v.Handler())

	resp, _ := do(t, app, "/broken")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestDirectTemplate(t *testing.T) {
	views := &recordViews{}
	app := newApp(views, nil, nil)

	calls := 0
	app.Get("/about", DirectTemplate("about", "", ExtraContext{
		"title": Static("About"),
		"n": Producer(func() any {
			calls++

			return calls
		}),
	}))

	_, body := do(t, app, "/about")
	assert.Equal(t, "about", body)
	assert.Equal(t, "About", views.data["title"])
	assert.Equal(t, 1, views.data["n"])
	assert.Empty(t, views.layout)

	do(t, app, "/about")
	assert.Equal(t, 2, views.data["n"])
}

func TestRedirectView(t *testing.T) {
	app := newApp(&recordViews{}, fakeIdentity{authenticated: true}, nil)

	v := &RedirectView{
		Config: Config{LoginRequired: true},
		Name:   "home",
		GetFunc: func(c *fiber.Ctx) error {
			return c.Redirect("/dashboard")
		},
	}
	app.Get("/", v.Handler())

	resp, _ := do(t, app, "/")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestRedirectView_GatesBeforeGet(t *testing.T) {
	app := newApp(&recordViews{}, nil, nil)

	called := false
	v := &RedirectView{
		Config: Config{LoginRequired: true},
		GetFunc: func(c *fiber.Ctx) error {
			called = true

			return nil
		},
	}
	app.Get("/go", v.Handler())

	resp, _ := do(t, app, "/go")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?next=%2Fgo", resp.Header.Get("Location"))
	assert.False(t, called)
}

func TestRedirectView_GetNotImplemented(t *testing.T) {
	var v RedirectView

	err := v.Get(nil)
	assert.True(t, errors.Is(err, ErrNotImplemented))

	app := newApp(&recordViews{}, nil, nil)
	app.Get("/", v.Handler())

	resp, _ := do(t, app, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
