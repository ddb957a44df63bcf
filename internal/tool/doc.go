// Package tool composes the rate-limited client with the filtering and
// price-extraction stages.
//
// A Tool owns the shared HTTP transport and the rate limiter for its whole
// lifetime: Initialize starts the limiter's window-reset task, Shutdown
// cancels it and releases the transport exactly once. All fetch operations
// issued through one Tool share the same request limit.
package tool
