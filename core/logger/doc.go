// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for console (development) or JSON output
// and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so every line about one request can be
// correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("File not found", zap.String("path", c.Path()))
package logger
