package cors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Header is a single response header name/value pair.
type Header struct {
	Name  string
	Value string
}

// DefaultHeaders are set on every response.
var DefaultHeaders = []Header{
	{Name: fiber.HeaderAccessControlAllowOrigin, Value: "*"},
	{Name: fiber.HeaderAccessControlAllowMethods, Value: "GET, POST, PUT, DELETE, OPTIONS"},
	{Name: fiber.HeaderAccessControlAllowHeaders, Value: "Content-Type, Authorization"},
}

// Config holds configuration for the CORS middleware.
type Config struct {
	// Headers overrides DefaultHeaders when non-empty.
	Headers []Header
}

func headersFor(config []Config) []Header {
	if len(config) > 0 && len(config[0].Headers) > 0 {
		return config[0].Headers
	}
	return DefaultHeaders
}

// Apply sets headers on h, replacing any existing values.
func Apply(h *fasthttp.ResponseHeader, headers []Header) {
	for _, hd := range headers {
		h.Set(hd.Name, hd.Value)
	}
}

// New creates a middleware that sets the configured headers on every response,
// including the error responses rendered after the chain returns.
//
// Unlike fiber's cors middleware it does not look at the request: the headers are
// unconditional.
func New(config ...Config) fiber.Handler {
	headers := headersFor(config)

	return func(c *fiber.Ctx) error {
		Apply(&c.Response().Header, headers)
		return c.Next()
	}
}

// ErrorHandler wraps next so that errors rendered outside the middleware chain,
// such as malformed requests rejected by the HTTP parser, carry the headers too.
// A nil next means fiber.DefaultErrorHandler.
func ErrorHandler(next fiber.ErrorHandler, config ...Config) fiber.ErrorHandler {
	if next == nil {
		next = fiber.DefaultErrorHandler
	}
	headers := headersFor(config)

	return func(c *fiber.Ctx, err error) error {
		Apply(&c.Response().Header, headers)
		return next(c, err)
	}
}

// Wrap sets the headers before next runs. Fiber answers requests with an unknown
// method before any middleware, so the app's server handler needs this to cover them.
func Wrap(next fasthttp.RequestHandler, config ...Config) fasthttp.RequestHandler {
	headers := headersFor(config)

	return func(fctx *fasthttp.RequestCtx) {
		Apply(&fctx.Response.Header, headers)
		next(fctx)
	}
}
