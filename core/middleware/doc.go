// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - CORS: Sets the fixed Access-Control-* headers on every response.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - AccessLog: Logs each request with its status and latency using Zap.
//
// These middleware components are registered globally by server.NewApp.
package middleware
