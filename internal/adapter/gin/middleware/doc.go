// Package middleware holds the cross-cutting request middleware.
//
// The pipeline order is fixed at router setup: Recovery outermost, then
// BearerAuth, then RequestLogger innermost before the handler. Recovery
// therefore catches panics from every inner stage, and RequestLogger only
// observes authenticated requests while still seeing the true final status.
package middleware
