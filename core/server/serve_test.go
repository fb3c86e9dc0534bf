package server_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"devserve/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServe_CancelReleasesPort(t *testing.T) {
	cfg := server.Config{Host: "127.0.0.1", Port: 0}
	ln, err := server.Listen(cfg)
	require.NoError(t, err)
	cfg.Port = server.BoundPort(ln)

	app := server.NewApp(zap.NewNop())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, app, ln, time.Second, zap.NewNop())
	}()

	url := fmt.Sprintf("http://%s/ping", cfg.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	// The port is free again.
	again, err := server.Listen(cfg)
	require.NoError(t, err)
	again.Close()
}

func TestServe_CancelBeforeAccept(t *testing.T) {
	ln, err := server.Listen(server.Config{Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = server.Serve(ctx, server.NewApp(zap.NewNop()), ln, time.Second, zap.NewNop())
	assert.NoError(t, err)
}

func TestServe_CancelWithOpenConnection(t *testing.T) {
	ln, err := server.Listen(server.Config{Host: "127.0.0.1", Port: 0})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, server.NewApp(zap.NewNop()), ln, 100*time.Millisecond, zap.NewNop())
	}()

	// A client that never finishes its request keeps the connection busy.
	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte("GET /index.html HTTP/1.1\r\nHost: localhost\r\n"))
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
