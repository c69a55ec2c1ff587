package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/gojira/gojira/internal/logger/adapter/fiber"

	"github.com/gojira/gojira/internal/logger"
)

type accessLine struct {
	Status   int    `json:"status"`
	URI      string `json:"URI"`
	Method   string `json:"method"`
	Host     string `json:"host"`
	Location string `json:"Location"`
	Error    string `json:"error"`
}

func newApp(cfg adapter.Config) *fiber.App {
	app := fiber.New()
	app.Use(adapter.New(cfg))

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/checkalive", func(c *fiber.Ctx) error { return c.SendString("alive") })
	app.Get("/away", func(c *fiber.Ctx) error { return c.Redirect("/login?next=%2Faway") })
	app.Get("/boom", func(_ *fiber.Ctx) error { return errors.New("boom") }) //nolint:goerr113

	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeLine(t *testing.T, buf *bytes.Buffer) accessLine {
	t.Helper()

	var line accessLine

	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line), buf.String())

	return line
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		uri    string
	}{
		{name: "root", target: "/", status: fiber.StatusOK, uri: "/"},
		{name: "with params", target: "/?test=123", status: fiber.StatusOK, uri: "/?test=123"},
		{name: "multi slash", target: "/no_path//?test=123", status: fiber.StatusNotFound, uri: "/no_path//?test=123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			app := newApp(adapter.Config{Output: &buf})
			resp := doRequest(t, app, tt.target)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Performance"))

			line := decodeLine(t, &buf)
			assert.Equal(t, tt.status, line.Status)
			assert.Equal(t, tt.uri, line.URI)
			assert.Equal(t, fiber.MethodGet, line.Method)
			assert.Equal(t, "example.com", line.Host)
		})
	}
}

func TestNew_LogsRedirectLocation(t *testing.T) {
	var buf bytes.Buffer

	app := newApp(adapter.Config{Output: &buf})
	resp := doRequest(t, app, "/away")

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	line := decodeLine(t, &buf)
	assert.Equal(t, "/login?next=%2Faway", line.Location)
}

func TestNew_ChainErrorUsesErrorHandler(t *testing.T) {
	var buf bytes.Buffer

	app := newApp(adapter.Config{Output: &buf})
	resp := doRequest(t, app, "/boom")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	line := decodeLine(t, &buf)
	assert.Equal(t, fiber.StatusInternalServerError, line.Status)
	assert.Equal(t, "boom", line.Error)
}

func TestNew_SkipsCheckAlive(t *testing.T) {
	var buf bytes.Buffer

	app := newApp(adapter.Config{
		Output:        &buf,
		CheckAliveURI: "/checkalive",
		Config:        logger.Log{DisableCheckAlive: true},
	})

	resp := doRequest(t, app, "/checkalive")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, buf.String())
}

func TestNew_NextSkips(t *testing.T) {
	var buf bytes.Buffer

	app := newApp(adapter.Config{
		Output: &buf,
		Next:   func(_ *fiber.Ctx) bool { return true },
	})

	doRequest(t, app, "/")

	assert.Empty(t, buf.String())
}
