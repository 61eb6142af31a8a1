// Package server assembles the file server: configuration, logging, metrics,
// tracing, middleware and routes, plus the listener lifecycle.
package server
