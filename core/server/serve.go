package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Serve runs app on ln until ctx is cancelled, then shuts it down within timeout
// and closes ln so the port is released. It returns nil on a cancelled context,
// even when open connections outlive the timeout; only a failing accept loop is
// an error.
func Serve(ctx context.Context, app *fiber.App, ln net.Listener, timeout time.Duration, logg *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		_ = ln.Close()
		if err != nil {
			return &StartupError{Kind: FailureServe, Err: err}
		}
		return nil
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...", zap.Duration("timeout", timeout))
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		logg.Warn("Shutdown timed out, dropping open connections", zap.Duration("timeout", timeout), zap.Error(err))
	}

	// Covers the case where the accept loop had not started when Shutdown ran.
	if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		logg.Debug("Closing listener", zap.Error(err))
	}
	<-errCh

	return nil
}
