// Package server owns the HTTP server lifecycle: configuration, the Fiber
// application and its middleware chain, binding the listener and serving until
// cancelled.
//
// # Lifecycle
//
//	Starting -> Serving -> Stopped
//	         \-> Failed (FailureAddrInUse | FailureStartup | FailureUnexpected)
//
// Listen classifies bind failures into *StartupError values; a taken port is
// detected through the platform's EADDRINUSE error, not a numeric code. Serve
// blocks until its context is cancelled, shuts the app down within the configured
// timeout and releases the port.
//
// # Usage
//
//	app := server.NewApp(logg)
//	ln, err := server.Listen(cfg.Server)
//	if err != nil {
//	    return err // *StartupError
//	}
//	err = server.Serve(ctx, app, ln, cfg.Server.ShutdownTimeout(), logg)
package server
