package cors_test

import (
	"net/http/httptest"
	"testing"

	"devserve/core/middleware/cors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCORS(t *testing.T, header map[string][]string) {
	t.Helper()
	assert.Equal(t, []string{"*"}, header["Access-Control-Allow-Origin"])
	assert.Equal(t, []string{"GET, POST, PUT, DELETE, OPTIONS"}, header["Access-Control-Allow-Methods"])
	assert.Equal(t, []string{"Content-Type, Authorization"}, header["Access-Control-Allow-Headers"])
}

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/dup", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		return c.SendString("dup")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "nope")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"Success", "GET", "/ok", 200},
		{"HandlerSetsSameHeader", "GET", "/dup", 200},
		{"HandlerError", "GET", "/fail", fiber.StatusTeapot},
		{"RecoveredPanic", "GET", "/panic", 500},
		{"NotFound", "GET", "/missing", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assertCORS(t, resp.Header)
		})
	}
}

func TestNew_CustomHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(cors.New(cors.Config{Headers: []cors.Header{{Name: "Access-Control-Allow-Origin", Value: "http://example.test"}}}))
	app.Get("/", func(c *fiber.Ctx) error { return nil })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: cors.ErrorHandler(nil)})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "nope")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assertCORS(t, resp.Header)
}

func TestWrap(t *testing.T) {
	app := fiber.New()
	srv := app.Server()
	srv.Handler = cors.Wrap(srv.Handler)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for _, method := range []string{"GET", "FOO"} {
		t.Run(method, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(method, "/", nil))
			require.NoError(t, err)
			assertCORS(t, resp.Header)
		})
	}
}
