// Package webtest holds the fixtures shared by the web handler tests.
package webtest

import (
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gojira/gojira/internal/config"
	"github.com/gojira/gojira/internal/db/models"
	"github.com/gojira/gojira/internal/web/session"
	"github.com/gojira/gojira/internal/web/view"
)

// SiteURL is the Webserver.URL of Config. It matches the host of requests
// built with httptest.NewRequest.
const SiteURL = "http://example.com"

// Views is a fiber.Views engine that records the last render. It writes the
// "error" value of the data when present and the template name otherwise.
type Views struct {
	mu     sync.Mutex
	name   string
	layout string
	data   fiber.Map
}

// Load implements fiber.Views.
func (*Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data interface{}, layout ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.name = name
	v.data, _ = data.(fiber.Map)
	v.layout = ""

	if len(layout) > 0 {
		v.layout = layout[0]
	}

	if msg, ok := v.data["error"].(string); ok {
		_, err := io.WriteString(w, msg)

		return err
	}

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the template name, layout and data of the last render.
func (v *Views) Last() (name, layout string, data fiber.Map) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.layout, v.data
}

// Config returns a valid configuration for tests.
func Config() *config.Config {
	return &config.Config{
		Title: "gojira test",
		Webserver: config.Webserver{
			URL:          SiteURL,
			Port:         8080,
			LoginURL:     config.DefaultLoginURL,
			ShutDownTime: 1,
			Session:      config.Session{ExpiryTime: time.Minute},
		},
		DB: config.DB{GormEngine: config.EngineSQLite, Name: ":memory:"},
	}
}

// DB returns a migrated in-memory database.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every connection would get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Setting{}))

	return db
}

// App returns a fiber app rendering with views. middleware runs before any
// route registered later.
func App(views fiber.Views, middleware ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{Views: views})

	for _, m := range middleware {
		app.Use(m)
	}

	return app
}

// Sessions resets the session store to a fresh in-memory storage.
func Sessions() {
	session.Init(nil)
}

// Login writes a session for user and returns its ID.
func Login(t *testing.T, user *models.User) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	data := &session.Data{UserID: user.ID}
	data.Set(view.PremiumKey, user.Premium)
	require.NoError(t, data.Write(id, time.Minute))

	return id
}

// Do runs req against app and returns the response with its body read.
func Do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

// WithSession adds the session cookie to req.
func WithSession(req *http.Request, sessionID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

	return req
}
