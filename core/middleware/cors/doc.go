// Package cors sets a fixed list of Cross-Origin Resource Sharing headers on every
// response.
//
// The headers are written before the rest of the chain runs, so they survive error
// responses rendered by the application's error handler and panics turned into 500s
// by the recover middleware. Set replaces any value a handler might have written,
// so each header appears exactly once.
//
// Fiber renders some responses without running middleware: requests the HTTP parser
// rejects go straight to the error handler, and unknown methods are answered by the
// router itself. ErrorHandler and Wrap cover those.
package cors
