package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds every interface.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8000"`
	// Root is the served directory. Empty means the directory containing the executable.
	Root string `mapstructure:"root" default:""`
	// Source selects where files come from (disk, bucket).
	Source string `mapstructure:"source" default:"disk"`
	// Browse enables directory listings for directories without an index.html.
	Browse bool `mapstructure:"browse" default:"true"`
	// OpenBrowser opens the default web browser once the server is listening.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may run after an interrupt.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

const (
	SourceDisk   = "disk"
	SourceBucket = "bucket"
)

// IsValidSource checks if the configured source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceDisk, SourceBucket:
		return true
	default:
		return false
	}
}

// Validate reports configuration values the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if !c.IsValidSource() {
		return fmt.Errorf("invalid source %q: must be %q or %q", c.Source, SourceDisk, SourceBucket)
	}
	return nil
}

// Addr returns the listen address, e.g. ":8000".
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ShutdownTimeout returns the graceful shutdown budget.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LocalURL is the URL printed for, and opened in, the local browser.
func (c Config) LocalURL() string {
	host := c.Host
	if isWildcard(host) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}

// NetworkURL is the URL other machines on the network can use.
// It falls back to the loopback address when no external interface is up.
func (c Config) NetworkURL() string {
	host := c.Host
	if isWildcard(host) {
		host = externalIPv4()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Port))
}

func isWildcard(host string) bool {
	return host == "" || host == "0.0.0.0" || host == "::"
}

func externalIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
