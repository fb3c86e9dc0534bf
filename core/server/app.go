package server

import (
	"devserve/core/middleware/accesslog"
	"devserve/core/middleware/cors"
	"devserve/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with the global middleware chain.
// Features register their routes on the returned app.
func NewApp(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "devserve",
		DisableStartupMessage: true, // We print our own banner
		ErrorHandler:          cors.ErrorHandler(fiber.DefaultErrorHandler),
	})

	// Unknown methods never reach the router
	srv := app.Server()
	srv.Handler = cors.Wrap(srv.Handler)

	// 1. Recover (outermost, so a panicking handler still yields a response)
	app.Use(recover.New())

	// 2. CORS headers on every response, error responses included
	app.Use(cors.New())

	// 3. RayID, then logging that uses it
	app.Use(rayid.New())
	app.Use(accesslog.New(logg))

	return app
}
