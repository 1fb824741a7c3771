// Package controller contains the HTTP middlewares and handlers of the
// operational listener that runs next to long exports.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs each request.
//
// Provided handlers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
//   - ProgressHandler: Serves the running export tally as JSON.
//   - HealthHandler: Reports whether the export store is reachable.
package controller
