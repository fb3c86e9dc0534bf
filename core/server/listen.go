package server

import (
	"fmt"
	"net"
)

// Listen binds the configured address. Bind failures come back as *StartupError,
// with FailureAddrInUse when the port is taken.
func Listen(cfg Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		if isAddrInUse(err) {
			return nil, &StartupError{Kind: FailureAddrInUse, Port: cfg.Port, Err: err}
		}
		return nil, &StartupError{Kind: FailureStartup, Port: cfg.Port, Err: fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)}
	}
	return ln, nil
}

// BoundPort returns the port ln actually listens on, which differs from the
// configured one when port 0 was requested.
func BoundPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
