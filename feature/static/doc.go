// Package static implements the static file feature.
//
// It serves a site from an http.FileSystem (a directory on disk or a storage
// bucket) using Fiber's filesystem middleware:
//
//   - files are returned with a content type inferred from their extension
//   - directories serve their index.html, or a listing when browsing is enabled
//   - missing paths fall through to the application's 404
//
// Paths are normalized before lookup and the file system rejects ".." segments,
// so nothing outside the root is reachable. CORS headers are added by the
// application-wide middleware, not here.
package static
